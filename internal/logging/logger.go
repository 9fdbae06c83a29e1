package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	var output = w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names give info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = "json"
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// KEYEDIT_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// KEYEDIT_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return New(cfg)
}

// ApplyEnv overrides cfg with KEYEDIT_LOG_LEVEL and KEYEDIT_LOG_FORMAT when set.
func ApplyEnv(cfg *Config) {
	if level := os.Getenv("KEYEDIT_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}
	if format := os.Getenv("KEYEDIT_LOG_FORMAT"); format == "json" || format == "console" {
		cfg.Format = format
	}
}

// FileConfig describes a rotated log file.
type FileConfig struct {
	Config
	RotateConfig
}

// NewWithFile creates a logger writing to a rotated file in cfg.Dir.
// The returned cleanup closes the file.
func NewWithFile(cfg FileConfig) (zerolog.Logger, func(), error) {
	if cfg.Dir == "" {
		return zerolog.Nop(), func() {}, fmt.Errorf("log directory is empty")
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}

	rotator, err := NewLogRotator(cfg.RotateConfig)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logger := NewWithWriter(cfg.Config, rotator).With().Str("log_file", rotator.Path()).Logger()
	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
