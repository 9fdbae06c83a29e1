// Package config loads, validates, watches and saves the keyedit configuration.
package config

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for keyedit.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Editor     EditorConfig     `mapstructure:"editor" yaml:"editor" toml:"editor" json:"editor"`
	Database   DatabaseConfig   `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	// Keys maps keyset name to action name to key sequences.
	Keys map[string]map[string][]string `mapstructure:"keys" yaml:"keys" toml:"keys" json:"keys"`
}

// EngineKind selects the binding engine used to probe sequences.
type EngineKind string

const (
	EngineTk  EngineKind = "tk"
	EngineGTK EngineKind = "gtk"
)

// EditorConfig controls the key binding dialog.
type EditorConfig struct {
	// Platform overrides modifier detection: linux, darwin or windows. Empty means the running OS.
	Platform string `mapstructure:"platform" yaml:"platform" toml:"platform" json:"platform,omitempty"`
	// Engine is the binding engine asked to accept a sequence (tk or gtk).
	Engine EngineKind `mapstructure:"engine" yaml:"engine" toml:"engine" json:"engine" jsonschema:"enum=tk,enum=gtk"`
	// Keyset is the keyset edited when none is given on the command line.
	Keyset string `mapstructure:"keyset" yaml:"keyset" toml:"keyset" json:"keyset"`
	// VerifyConcurrency bounds parallel engine probes in verify.
	VerifyConcurrency int `mapstructure:"verify_concurrency" yaml:"verify_concurrency" toml:"verify_concurrency" json:"verify_concurrency" jsonschema:"minimum=1,maximum=64"`
}

// DatabaseConfig holds the binding history database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
	// DisableHistory turns off recording of accepted changes.
	DisableHistory bool `mapstructure:"disable_history" yaml:"disable_history" toml:"disable_history" json:"disable_history"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	// Compress gzips rotated log files.
	Compress bool `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// AppearanceConfig holds terminal UI colors.
type AppearanceConfig struct {
	LightPalette ColorPalette `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	// ColorScheme is "prefer-dark", "prefer-light", or "default" (follows the terminal background)
	ColorScheme string `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light"`
}

// Color scheme values.
const (
	ThemeDefault     = "default"
	ThemePreferDark  = "prefer-dark"
	ThemePreferLight = "prefer-light"
)

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}
