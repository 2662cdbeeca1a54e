// Package schemas embeds the goose migrations of the dictionary persistence database.
package schemas

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var files embed.FS

// Migrations returns the migration files rooted at the migrations directory,
// the layout goose.NewProvider expects.
func Migrations() fs.FS {
	migrations, err := fs.Sub(files, "migrations")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return migrations
}
