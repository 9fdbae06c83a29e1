package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("ENV", "")
	return dir
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "tk", mgr.viper.GetString("editor.engine"))
	assert.Equal(t, DefaultKeyset, mgr.viper.GetString("editor.keyset"))
	assert.Equal(t, 4, mgr.viper.GetInt("editor.verify_concurrency"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.True(t, mgr.viper.GetBool("logging.compress"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	dir := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(dir, "config", "keyedit", "config.toml")
	assert.Equal(t, configFile, mgr.GetConfigFile())
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(dir, "config", "keyedit", "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, EngineTk, cfg.Editor.Engine)
	assert.Equal(t, filepath.Join(dir, "data", "keyedit", "keyedit.db"), cfg.Database.Path)
	require.Contains(t, cfg.Keys, DefaultKeyset)
	assert.Equal(t, []string{"<Key-F5>"}, cfg.Keys[DefaultKeyset]["run-module"])
	assert.Equal(t, []string{"<Command-Key-c>", "<Command-Key-C>"}, cfg.Keys[MacKeyset]["copy"])
}

func TestManager_LoadReadsUserFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[editor]
engine = "GTK"
keyset = "mine"

[keys.mine]
run-module = ["<Key-F9>"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, EngineGTK, cfg.Editor.Engine)
	assert.Equal(t, "mine", cfg.Editor.Keyset)
	assert.Equal(t, []string{"<Key-F9>"}, cfg.Keys["mine"]["run-module"])
	assert.Contains(t, cfg.Keys, DefaultKeyset, "default keysets stay available")
}

func TestManager_LoadRejectsInvalid(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\nengine = \"qt\"\n"), 0o644))

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor.engine")
}

func TestManager_EnvOverride(t *testing.T) {
	isolateXDG(t)
	t.Setenv("KEYEDIT_LOG_LEVEL", "debug")
	t.Setenv("KEYEDIT_EDITOR_KEYSET", MacKeyset)

	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, MacKeyset, cfg.Editor.Keyset)
}

func TestManager_SaveRoundTrip(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Keys[DefaultKeyset]["run-module"] = []string{"<Control-Key-F5>"}
	require.NoError(t, mgr.Save(cfg))
	assert.Equal(t, []string{"<Control-Key-F5>"}, mgr.Get().Keys[DefaultKeyset]["run-module"])

	reloaded, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"<Control-Key-F5>"}, reloaded.Get().Keys[DefaultKeyset]["run-module"])

	bad := mgr.Get()
	bad.Editor.VerifyConcurrency = 0
	assert.Error(t, mgr.Save(bad))
	assert.Error(t, mgr.Save(nil))
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Keys[DefaultKeyset]["copy"][0] = "<Key-F1>"
	assert.Equal(t, "<Control-Key-c>", mgr.Get().Keys[DefaultKeyset]["copy"][0])
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.Engine = " TK "
	cfg.Appearance.ColorScheme = "neon"
	cfg.Logging.Format = ""

	normalizeConfig(cfg)

	assert.Equal(t, EngineTk, cfg.Editor.Engine)
	assert.Equal(t, ThemeDefault, cfg.Appearance.ColorScheme)
	assert.Equal(t, "console", cfg.Logging.Format)
}
