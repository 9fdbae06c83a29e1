package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WatchReloadsExternalChange(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan string, 16)
	mgr.OnConfigChange(func(cfg *Config) {
		select {
		case changed <- cfg.Editor.Keyset:
		default:
		}
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second Watch is a no-op")

	content := `
[editor]
keyset = "classic-mac"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// A truncating write can fire more than one event.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case keyset := <-changed:
			if keyset == MacKeyset {
				assert.Equal(t, MacKeyset, mgr.Get().Editor.Keyset)
				return
			}
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}
}

func TestManager_NotifyCallbacksGetCopies(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg) })
	mgr.OnConfigChange(func(cfg *Config) { cfg.Editor.Keyset = "mutated" })

	mgr.mu.Lock()
	mgr.notifyCallbacksLocked()

	require.Len(t, got, 1)
	assert.Equal(t, DefaultKeyset, mgr.Get().Editor.Keyset)
}
