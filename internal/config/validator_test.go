package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_Origin(t *testing.T) {
	type cors struct {
		Origins []string `json:"origins" validate:"dive,origin"`
	}

	tests := []struct {
		name    string
		origin  string
		wantErr string
	}{
		{name: "http origin", origin: "http://localhost:3000"},
		{name: "https origin with trailing slash", origin: "https://artikel.example/"},
		{name: "wildcard", origin: "*"},
		{name: "path", origin: "https://artikel.example/app", wantErr: "origins[0] must be an http(s) origin without a path, or *"},
		{name: "scheme", origin: "ftp://artikel.example", wantErr: "origins[0] must be an http(s) origin"},
		{name: "host only", origin: "artikel.example", wantErr: "origins[0] must be an http(s) origin"},
	}

	validate, trans, err := NewValidator("json")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(cors{Origins: []string{tt.origin}})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			assert.Contains(t, validationErrors[0].Translate(trans), tt.wantErr)
		})
	}
}

func TestNewValidator_File(t *testing.T) {
	type templates struct {
		Path string `mapstructure:"path" validate:"omitempty,file"`
	}

	tmpDir := t.TempDir()
	readable := filepath.Join(tmpDir, "sheet.tmpl")
	require.NoError(t, os.WriteFile(readable, []byte("# {{ .Name }}"), 0644))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "empty is allowed", path: ""},
		{name: "readable file", path: readable},
		{name: "missing file", path: filepath.Join(tmpDir, "missing.tmpl"), wantErr: true},
		{name: "directory", path: tmpDir, wantErr: true},
	}

	validate, trans, err := NewValidator("mapstructure")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(templates{Path: tt.path})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			assert.Equal(t, "path must be an existing and readable file", validationErrors[0].Translate(trans))
		})
	}
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "templates.dictionary_template", fieldPath("Config.templates.dictionary_template"))
	assert.Equal(t, "name", fieldPath("name"))
}
