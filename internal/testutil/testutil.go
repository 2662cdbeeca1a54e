// Package testutil provides shared test helpers for config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file whose stores and outputs live under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return writeConfig(t, tmpDir, "")
}

// SetupTestConfigWithRemote creates a config file that points the remote client at baseURL.
func SetupTestConfigWithRemote(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()
	return writeConfig(t, tmpDir, fmt.Sprintf("remote:\n  base_url: %s\n  timeout: 5s\n", baseURL))
}

func writeConfig(t *testing.T, tmpDir string, extra string) string {
	t.Helper()

	for _, d := range []string{"data", "outputs"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  settings_file: %s
  database_file: %s
outputs:
  dictionary_directory: %s
training:
  feedback:
    correct: 10ms
    incorrect: 10ms
    incorrect_mobile: 10ms
    invalid: 10ms
`,
		filepath.Join(tmpDir, "data", "settings.yml"),
		filepath.Join(tmpDir, "data", "artikel.db"),
		filepath.Join(tmpDir, "outputs"),
	) + extra

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteWordList writes a word list in the text import format and returns its path.
func WriteWordList(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var content string
	for _, line := range lines {
		content += line + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
