package rotini

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rotini.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Display.Cols)
	assert.Equal(t, 4, cfg.Display.Rows)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[display]
cols = 16
rows = 2

[input]
encoder_device = "/dev/input/event5"

[menu]
timeout_seconds = 10
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Display.Cols)
	assert.Equal(t, 2, cfg.Display.Rows)
	assert.Equal(t, "/dev/input/event5", cfg.Input.EncoderDevice)
	assert.Equal(t, 10*time.Second, cfg.Timeout())

	// Untouched sections keep their defaults.
	assert.Equal(t, uint8(0x27), cfg.Display.I2CAddr)
	assert.Equal(t, "/dev/input/event1", cfg.Input.ButtonDevice)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow display", func(c *Config) { c.Display.Cols = 1 }},
		{"no rows", func(c *Config) { c.Display.Rows = 0 }},
		{"missing encoder", func(c *Config) { c.Input.EncoderDevice = "" }},
		{"negative timeout", func(c *Config) { c.Menu.TimeoutSeconds = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsConfiguration(err))
		})
	}
}

func TestConfigGeometry(t *testing.T) {
	cfg := DefaultConfig()
	geom := cfg.Geometry()
	assert.Equal(t, 20, geom.Cols)
	assert.Equal(t, 4, geom.Rows)
}
