package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// isolate points the config directory at a temp dir and resets viper.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("PHOENIX_KITS_HOME", home)
	t.Setenv("PHOENIX_KITS_PHOENIX_ENDPOINT", "")
	t.Setenv("PHOENIX_KITS_TEMPLATES_DIR", "")
	t.Setenv("PHOENIX_KITS_LOG_LEVEL", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

// runCLI executes the command tree in-process, reporting errors the way
// Execute does.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	root := newRootCmd(buildInfo{version: "0.1.0", commit: "abc1234", date: "2026-01-01"})
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := execute(root)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
