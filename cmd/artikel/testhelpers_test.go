package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/artikel/internal/dictionary"
	"github.com/at-ishikawa/artikel/internal/training"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// execute runs a command with args and returns what it printed.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// userDictionaries opens the configured workspace and returns its user dictionaries.
func userDictionaries(t *testing.T) []dictionary.Dictionary {
	t.Helper()
	cfg, err := loadConfig()
	require.NoError(t, err)
	workspace, closeWorkspace, err := openWorkspace(context.Background(), cfg, training.Options{})
	require.NoError(t, err)
	defer closeWorkspace()

	var result []dictionary.Dictionary
	for _, d := range workspace.Dictionaries() {
		if !d.Builtin {
			result = append(result, d)
		}
	}
	return result
}
