package port

import (
	"context"

	"github.com/bnema/keyedit/internal/domain/entity"
)

// KeybindingEntry represents a single action binding for display.
type KeybindingEntry struct {
	Action    string   `json:"action"`
	Sequences []string `json:"sequences"`
	Shared    bool     `json:"shared"`
}

// KeysetView is a keyset prepared for display.
type KeysetView struct {
	Name     string            `json:"name"`
	Bindings []KeybindingEntry `json:"bindings"`
}

// SetKeybindingRequest replaces the sequences of one action.
type SetKeybindingRequest struct {
	Keyset    string   `json:"keyset"`
	Action    string   `json:"action"`
	Sequences []string `json:"sequences"`
}

// KeybindingsProvider provides keyset data.
type KeybindingsProvider interface {
	ActiveKeyset(ctx context.Context) (string, error)
	GetKeyset(ctx context.Context, name string) (entity.Keyset, error)
	ListKeysets(ctx context.Context) ([]string, error)
}

// KeybindingsSaver persists keybinding changes.
type KeybindingsSaver interface {
	SetKeybinding(ctx context.Context, req SetKeybindingRequest) error
}
