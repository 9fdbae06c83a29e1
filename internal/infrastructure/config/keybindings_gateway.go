package config

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/logging"
)

// ErrUnknownKeyset is returned for a keyset missing from [keys].
var ErrUnknownKeyset = fmt.Errorf("unknown keyset")

// KeybindingsGateway implements port.KeybindingsProvider and port.KeybindingsSaver.
type KeybindingsGateway struct {
	mgr *Manager
}

// NewKeybindingsGateway creates a new KeybindingsGateway.
func NewKeybindingsGateway(mgr *Manager) *KeybindingsGateway {
	return &KeybindingsGateway{mgr: mgr}
}

// ActiveKeyset returns editor.keyset.
func (g *KeybindingsGateway) ActiveKeyset(_ context.Context) (string, error) {
	return g.mgr.Get().Editor.Keyset, nil
}

// GetKeyset returns a copy of the named keyset.
func (g *KeybindingsGateway) GetKeyset(ctx context.Context, name string) (entity.Keyset, error) {
	log := logging.FromContext(ctx)
	actions, ok := g.mgr.Get().Keys[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyset, name)
	}
	log.Debug().Str("keyset", name).Int("actions", len(actions)).Msg("keybindings gateway: fetching keyset")
	return entity.Keyset(actions).Clone(), nil
}

// ListKeysets returns keyset names sorted.
func (g *KeybindingsGateway) ListKeysets(_ context.Context) ([]string, error) {
	keys := g.mgr.Get().Keys
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SetKeybinding replaces the sequences of one action and saves the config.
func (g *KeybindingsGateway) SetKeybinding(ctx context.Context, req port.SetKeybindingRequest) error {
	log := logging.FromContext(ctx)
	if req.Keyset == "" || req.Action == "" {
		return fmt.Errorf("keyset and action are required")
	}
	log.Debug().Str("keyset", req.Keyset).Str("action", req.Action).Strs("keys", req.Sequences).Msg("keybindings gateway: setting keybinding")

	cfg := g.mgr.Get()
	actions, ok := cfg.Keys[req.Keyset]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKeyset, req.Keyset)
	}
	actions[req.Action] = append([]string(nil), req.Sequences...)
	return g.mgr.Save(cfg)
}
