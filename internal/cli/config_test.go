package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetGet(t *testing.T) {
	home := isolate(t)

	res := runCLI(t, "", "config", "set", "phoenix_endpoint", "http://collector:6006/v1/traces")
	require.NoError(t, res.err)
	assert.Equal(t, "Set phoenix_endpoint = http://collector:6006/v1/traces\n", res.stdout)
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	viper.Reset()
	res = runCLI(t, "", "config", "get", "phoenix_endpoint")
	require.NoError(t, res.err)
	assert.Equal(t, "http://collector:6006/v1/traces\n", res.stdout)
}

func TestConfigSetUnknownKey(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "config", "set", "colour", "blue")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `unknown config key "colour"`)
}

func TestConfigList(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "config", "list")
	require.NoError(t, res.err)
	assert.Regexp(t, `^KEY\s+VALUE\n`, res.stdout)
	assert.Regexp(t, `log_level\s+warn`, res.stdout)
	assert.Regexp(t, `phoenix_endpoint\s+http://127\.0\.0\.1:6006/v1/traces`, res.stdout)
	assert.Contains(t, res.stdout, "templates_dir")
}

func TestConfiguredEndpointReachesProject(t *testing.T) {
	isolate(t)

	res := runCLI(t, "", "config", "set", "phoenix_endpoint", "http://saved:6006/v1/traces")
	require.NoError(t, res.err)

	viper.Reset()
	out := filepath.Join(t.TempDir(), "out")
	res = runCLI(t, "", "init", "--template", "llamaindex-qa", "--project-name", "Demo", out)
	require.NoError(t, res.err)
	assert.Contains(t, readFile(t, filepath.Join(out, "demo", ".env")), "PHOENIX_TRACE_ENDPOINT=http://saved:6006/v1/traces")
}

func TestConfigSetRejectsInvalidLogLevel(t *testing.T) {
	home := isolate(t)

	res := runCLI(t, "", "config", "set", "log_level", "verbose")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, `invalid log level "verbose"`)
	assert.NoFileExists(t, filepath.Join(home, "config.yaml"))
}

func TestStoredInvalidLogLevelFallsBack(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "config.yaml"), "log_level: verbose\n")

	res := runCLI(t, "", "config", "set", "log_level", "warn")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `Warning: invalid log level "verbose"`)
	assert.Contains(t, readFile(t, filepath.Join(home, "config.yaml")), "log_level: warn")

	viper.Reset()
	out := filepath.Join(t.TempDir(), "out")
	res = runCLI(t, "", "init", "--template", "langchain-rag", "--project-name", "Demo", out)
	require.NoError(t, res.err)
	assert.NotContains(t, res.stderr, "Warning")
	assert.DirExists(t, filepath.Join(out, "demo"))
}
