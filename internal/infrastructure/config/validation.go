package config

import (
	"fmt"
	"strings"

	"github.com/bnema/keyedit/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateEditor(config)...)
	validationErrors = append(validationErrors, validateKeys(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	switch config.Appearance.ColorScheme {
	case ThemeDefault, ThemePreferDark, ThemePreferLight:
	default:
		validationErrors = append(validationErrors, "appearance.color_scheme must be default, prefer-dark or prefer-light")
	}
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	var validationErrors []string
	fields := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, f := range fields {
		if f.value != "" && !validation.IsHexColor(f.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.%s must be a hex color like #aabbcc", prefix, f.name))
		}
	}
	return validationErrors
}

func validateEditor(config *Config) []string {
	var validationErrors []string
	switch config.Editor.Engine {
	case EngineTk, EngineGTK:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("editor.engine %q must be tk or gtk", config.Editor.Engine))
	}
	switch strings.ToLower(config.Editor.Platform) {
	case "", "linux", "darwin", "macos", "mac", "windows", "win32":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("editor.platform %q must be linux, darwin or windows", config.Editor.Platform))
	}
	if config.Editor.VerifyConcurrency < 1 || config.Editor.VerifyConcurrency > 64 {
		validationErrors = append(validationErrors, "editor.verify_concurrency must be between 1 and 64")
	}
	if config.Editor.Keyset == "" {
		validationErrors = append(validationErrors, "editor.keyset must not be empty")
	} else if _, ok := config.Keys[config.Editor.Keyset]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("editor.keyset %q is not defined under [keys]", config.Editor.Keyset))
	}
	return validationErrors
}

func validateKeys(config *Config) []string {
	var validationErrors []string
	for keyset, actions := range config.Keys {
		for action, seqs := range actions {
			for _, seq := range seqs {
				if strings.TrimSpace(seq) == "" {
					validationErrors = append(validationErrors, fmt.Sprintf("keys.%s.%s contains an empty sequence", keyset, action))
					break
				}
			}
		}
	}
	return validationErrors
}
