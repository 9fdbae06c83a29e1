package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "engine", mutate: func(c *Config) { c.Editor.Engine = "qt" }, want: "editor.engine"},
		{name: "platform", mutate: func(c *Config) { c.Editor.Platform = "beos" }, want: "editor.platform"},
		{name: "concurrency", mutate: func(c *Config) { c.Editor.VerifyConcurrency = 100 }, want: "editor.verify_concurrency"},
		{name: "missing keyset", mutate: func(c *Config) { c.Editor.Keyset = "nope" }, want: `editor.keyset "nope"`},
		{name: "empty keyset", mutate: func(c *Config) { c.Editor.Keyset = "" }, want: "editor.keyset must not be empty"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, want: "logging.level"},
		{name: "log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, want: "logging.format"},
		{name: "palette", mutate: func(c *Config) { c.Appearance.DarkPalette.Accent = "green" }, want: "appearance.dark_palette.accent"},
		{name: "scheme", mutate: func(c *Config) { c.Appearance.ColorScheme = "neon" }, want: "appearance.color_scheme"},
		{name: "empty sequence", mutate: func(c *Config) { c.Keys[DefaultKeyset]["copy"] = []string{" "} }, want: "keys.classic.copy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.Engine = "qt"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor.engine")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestDefaultConfig_MacKeyset(t *testing.T) {
	cfg := DefaultConfig()
	mac := cfg.Keys[MacKeyset]
	assert.Equal(t, []string{"<Command-Shift-Key-Z>", "<Command-Shift-Key-z>"}, mac["redo"])
	assert.Equal(t, []string{"<Option-Key-F4>", "<Meta-Key-F4>"}, mac["close-window"])
	assert.Equal(t, []string{"<Key-F5>"}, mac["run-module"])
	assert.Len(t, mac, len(cfg.Keys[DefaultKeyset]))
}
