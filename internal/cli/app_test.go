package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/infrastructure/config"
	"github.com/bnema/keyedit/internal/logging"
)

func TestNewFileLogger_UsesConfiguredDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	lc := config.DefaultConfig().Logging
	lc.LogDir = dir

	logger, cleanup, err := newFileLogger(lc, logging.DefaultConfig())
	require.NoError(t, err)
	logger.Warn().Msg("to file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "keyedit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewFileLogger_UnresolvableDir(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	wd := t.TempDir()
	t.Chdir(wd)

	_, _, err := newFileLogger(config.DefaultConfig().Logging, logging.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve log directory")

	// Nothing may land in the working directory.
	_, statErr := os.Stat(filepath.Join(wd, "keyedit.log"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewLogger_FallsBackToStderr(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("KEYEDIT_LOG_LEVEL", "")

	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = true

	logger, cleanup := newLogger(cfg, "")
	defer cleanup()
	assert.Equal(t, "warn", logger.GetLevel().String())
}
