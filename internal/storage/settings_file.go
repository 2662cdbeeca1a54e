// Package storage persists training settings and user dictionaries on the local machine.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/artikel/internal/training"
)

// SettingsFile keeps the training settings in a YAML file.
type SettingsFile struct {
	path string
}

func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{path: path}
}

// Load returns the stored settings, or the defaults when the file does not exist yet.
func (f *SettingsFile) Load() (training.Settings, error) {
	contents, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return training.DefaultSettings(), nil
	}
	if err != nil {
		return training.Settings{}, fmt.Errorf("os.ReadFile(%s) > %w", f.path, err)
	}

	settings := training.DefaultSettings()
	if err := yaml.Unmarshal(contents, &settings); err != nil {
		return training.Settings{}, fmt.Errorf("yaml.Unmarshal(%s) > %w", f.path, err)
	}
	return settings.Normalize(), nil
}

// Save writes the settings, replacing the previous file.
func (f *SettingsFile) Save(settings training.Settings) error {
	contents, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(f.path), err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, contents, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("os.Rename(%s) > %w", f.path, err)
	}
	return nil
}
