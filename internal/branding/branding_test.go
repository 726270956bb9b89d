package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedBranding(t *testing.T) {
	assert.Equal(t, "phoenix-kits", CLIName())
	assert.Equal(t, ".phoenix-kits", HomeDir())
	assert.Equal(t, "PHOENIX_KITS", EnvPrefix())
	assert.NotEmpty(t, DisplayName())
	assert.NotEmpty(t, Description())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "PHOENIX_KITS_TEMPLATES_DIR", EnvVar("templates_dir"))
	assert.Equal(t, "PHOENIX_KITS_HOME", EnvVar("HOME"))
}
