package dictionary

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yml
var catalogFS embed.FS

// Built-in dictionary ids, one per proficiency level.
const (
	LevelA1 = "a1"
	LevelA2 = "a2"
	LevelB1 = "b1"
)

// DefaultEnabledIDs is the safe enabled set used when nothing else yields words.
var DefaultEnabledIDs = []string{LevelA1}

var (
	builtinOnce sync.Once
	builtin     []Dictionary
	builtinErr  error
)

// Builtin returns the built-in level dictionaries.
// They are parsed once; callers must not modify the returned words.
func Builtin() ([]Dictionary, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = readCatalog(catalogFS, "catalog")
	})
	return builtin, builtinErr
}

func readCatalog(fsys fs.FS, dir string) ([]Dictionary, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	dictionaries := make([]Dictionary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yml" {
			continue
		}
		contents, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("fs.ReadFile(%s) > %w", entry.Name(), err)
		}

		var d Dictionary
		if err := yaml.Unmarshal(contents, &d); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", entry.Name(), err)
		}
		if err := ValidateWords(d.Words); err != nil {
			return nil, fmt.Errorf("catalog %s > %w", entry.Name(), err)
		}
		d.Builtin = true
		d.Enabled = true
		dictionaries = append(dictionaries, d)
	}
	return dictionaries, nil
}
