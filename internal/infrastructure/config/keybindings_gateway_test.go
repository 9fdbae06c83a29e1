package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/application/port"
)

func newTestGateway(t *testing.T) (*KeybindingsGateway, *Manager) {
	t.Helper()
	isolateXDG(t)
	mgr, err := NewManagerWithFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return NewKeybindingsGateway(mgr), mgr
}

func TestKeybindingsGateway_Read(t *testing.T) {
	g, _ := newTestGateway(t)
	ctx := context.Background()

	active, err := g.ActiveKeyset(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyset, active)

	names, err := g.ListKeysets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultKeyset, MacKeyset}, names)

	ks, err := g.GetKeyset(ctx, DefaultKeyset)
	require.NoError(t, err)
	assert.Equal(t, []string{"<Control-Key-a>"}, ks["select-all"])

	_, err = g.GetKeyset(ctx, "emacs")
	assert.ErrorIs(t, err, ErrUnknownKeyset)
}

func TestKeybindingsGateway_SetKeybinding(t *testing.T) {
	g, mgr := newTestGateway(t)
	ctx := context.Background()

	err := g.SetKeybinding(ctx, port.SetKeybindingRequest{
		Keyset:    DefaultKeyset,
		Action:    "zoom-height",
		Sequences: []string{"<Alt-Key-z>", "<Meta-Key-z>"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"<Alt-Key-z>", "<Meta-Key-z>"}, mgr.Get().Keys[DefaultKeyset]["zoom-height"])

	err = g.SetKeybinding(ctx, port.SetKeybindingRequest{Keyset: "emacs", Action: "x", Sequences: []string{"<Key-F1>"}})
	assert.ErrorIs(t, err, ErrUnknownKeyset)

	err = g.SetKeybinding(ctx, port.SetKeybindingRequest{Keyset: DefaultKeyset})
	assert.Error(t, err)
}
