package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a manager reading config.toml from the XDG config directory.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithFile(configFile)
}

// NewManagerWithFile creates a manager for an explicit config file path.
func NewManagerWithFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Set up environment variable support (KEYEDIT_EDITOR_ENGINE, KEYEDIT_DATABASE_PATH, ...)
	v.SetEnvPrefix("KEYEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "KEYEDIT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYEDIT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KEYEDIT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KEYEDIT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

// decode unmarshals, completes and validates the viper state into m.config.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Editor.Engine = EngineKind(strings.ToLower(strings.TrimSpace(string(config.Editor.Engine))))
	if config.Editor.Engine == "" {
		config.Editor.Engine = EngineTk
	}
	config.Editor.Platform = strings.TrimSpace(config.Editor.Platform)
	config.Editor.Keyset = strings.TrimSpace(config.Editor.Keyset)

	switch config.Appearance.ColorScheme {
	case ThemePreferDark, ThemePreferLight, ThemeDefault:
	default:
		config.Appearance.ColorScheme = ThemeDefault
	}

	config.Logging.Format = strings.ToLower(config.Logging.Format)
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return cloneConfig(m.config)
}

func cloneConfig(c *Config) *Config {
	out := *c
	out.Keys = make(map[string]map[string][]string, len(c.Keys))
	for keyset, actions := range c.Keys {
		cp := make(map[string][]string, len(actions))
		for action, seqs := range actions {
			cp[action] = append([]string(nil), seqs...)
		}
		out.Keys[keyset] = cp
	}
	return &out
}

// Save validates cfg, writes it to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate before writing so callers get immediate errors.
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config after save: %w", err)
	}
	m.config = cloneConfig(cfg)
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	defaults := DefaultConfig()
	if err := WriteConfigOrdered(defaults, m.configFile); err != nil {
		return err
	}
	if _, err := GenerateSchemaFile(filepath.Dir(m.configFile)); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setEditorDefaults(defaults)
	m.viper.SetDefault("database.disable_history", defaults.Database.DisableHistory)
	m.viper.SetDefault("keys", keysDefault(defaults.Keys))
}

// keysDefault converts the keysets to nested generic maps so viper merges them
// per action with the config file.
func keysDefault(keys map[string]map[string][]string) map[string]any {
	out := make(map[string]any, len(keys))
	for keyset, actions := range keys {
		inner := make(map[string]any, len(actions))
		for action, seqs := range actions {
			inner[action] = seqs
		}
		out[keyset] = inner
	}
	return out
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.light_palette", defaults.Appearance.LightPalette)
	m.viper.SetDefault("appearance.dark_palette", defaults.Appearance.DarkPalette)
	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
}

func (m *Manager) setEditorDefaults(defaults *Config) {
	m.viper.SetDefault("editor.platform", defaults.Editor.Platform)
	m.viper.SetDefault("editor.engine", string(defaults.Editor.Engine))
	m.viper.SetDefault("editor.keyset", defaults.Editor.Keyset)
	m.viper.SetDefault("editor.verify_concurrency", defaults.Editor.VerifyConcurrency)
}
