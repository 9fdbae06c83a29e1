package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/repository"
	"github.com/bnema/keyedit/internal/logging"
)

// GetKeysetUseCase retrieves one keyset prepared for display.
type GetKeysetUseCase struct {
	provider port.KeybindingsProvider
}

// NewGetKeysetUseCase creates a new GetKeysetUseCase.
func NewGetKeysetUseCase(provider port.KeybindingsProvider) *GetKeysetUseCase {
	return &GetKeysetUseCase{provider: provider}
}

// Execute returns the named keyset, or the active one when name is empty.
func (uc *GetKeysetUseCase) Execute(ctx context.Context, name string) (port.KeysetView, error) {
	if uc == nil || uc.provider == nil {
		return port.KeysetView{}, fmt.Errorf("keybindings provider is nil")
	}

	name, err := resolveKeyset(ctx, uc.provider, name)
	if err != nil {
		return port.KeysetView{}, err
	}
	keyset, err := uc.provider.GetKeyset(ctx, name)
	if err != nil {
		return port.KeysetView{}, err
	}

	shared := make(map[string]bool)
	for _, s := range keyset.SharedSequences() {
		for _, action := range s.Actions {
			shared[action] = true
		}
	}

	view := port.KeysetView{Name: name, Bindings: make([]port.KeybindingEntry, 0, len(keyset))}
	for _, action := range keyset.Actions() {
		view.Bindings = append(view.Bindings, port.KeybindingEntry{
			Action:    action,
			Sequences: keyset[action],
			Shared:    shared[action],
		})
	}
	return view, nil
}

// ListKeysetsUseCase lists known keysets.
type ListKeysetsUseCase struct {
	provider port.KeybindingsProvider
}

// NewListKeysetsUseCase creates a new ListKeysetsUseCase.
func NewListKeysetsUseCase(provider port.KeybindingsProvider) *ListKeysetsUseCase {
	return &ListKeysetsUseCase{provider: provider}
}

// Execute returns the keyset names.
func (uc *ListKeysetsUseCase) Execute(ctx context.Context) ([]string, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("keybindings provider is nil")
	}
	return uc.provider.ListKeysets(ctx)
}

// EditKeybindingInput names the binding to edit.
type EditKeybindingInput struct {
	Keyset string
	Action string
	Title  string
}

// EditSession is an open editor together with what it was opened for.
type EditSession struct {
	Keyset  string
	Action  string
	OldKeys []string
	Editor  *KeyBindingEditor
}

// SetKeybindingUseCase opens an editor for one action and saves its result.
type SetKeybindingUseCase struct {
	provider port.KeybindingsProvider
	saver    port.KeybindingsSaver
	history  repository.BindingHistoryRepository
}

// NewSetKeybindingUseCase creates a new SetKeybindingUseCase.
// history may be nil.
func NewSetKeybindingUseCase(
	provider port.KeybindingsProvider,
	saver port.KeybindingsSaver,
	history repository.BindingHistoryRepository,
) *SetKeybindingUseCase {
	return &SetKeybindingUseCase{provider: provider, saver: saver, history: history}
}

// Prepare builds an editor whose duplicate check covers every sequence of the keyset.
func (uc *SetKeybindingUseCase) Prepare(ctx context.Context, in EditKeybindingInput, opts ...EditorOption) (*EditSession, error) {
	if uc == nil || uc.provider == nil {
		return nil, fmt.Errorf("keybindings provider is nil")
	}
	if strings.TrimSpace(in.Action) == "" {
		return nil, fmt.Errorf("action is required")
	}

	name, err := resolveKeyset(ctx, uc.provider, in.Keyset)
	if err != nil {
		return nil, err
	}
	keyset, err := uc.provider.GetKeyset(ctx, name)
	if err != nil {
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = fmt.Sprintf("Key Sequences for '%s'", in.Action)
	}

	old := append([]string(nil), keyset[in.Action]...)
	editor := NewKeyBindingEditor(title, in.Action, keyset.Existing(), opts...)
	return &EditSession{Keyset: name, Action: in.Action, OldKeys: old, Editor: editor}, nil
}

// Apply saves the accepted result of a closed editor. A canceled editor is a
// no-op and returns false.
func (uc *SetKeybindingUseCase) Apply(ctx context.Context, session *EditSession) (bool, error) {
	if uc == nil || uc.saver == nil {
		return false, fmt.Errorf("keybindings saver is nil")
	}
	if session == nil || session.Editor == nil {
		return false, fmt.Errorf("edit session is nil")
	}
	if !session.Editor.Closed() {
		return false, fmt.Errorf("editor is still open")
	}

	result := session.Editor.Result()
	if result == "" {
		return false, nil
	}

	log := logging.FromContext(logging.WithKeyset(ctx, session.Keyset))
	seqs := entity.SplitSequences(result)
	req := port.SetKeybindingRequest{Keyset: session.Keyset, Action: session.Action, Sequences: seqs}
	if err := uc.saver.SetKeybinding(ctx, req); err != nil {
		return false, fmt.Errorf("save keybinding: %w", err)
	}

	if uc.history != nil {
		change := &entity.BindingChange{
			Keyset:    session.Keyset,
			Action:    session.Action,
			OldKeys:   session.OldKeys,
			NewKeys:   seqs,
			Mode:      session.Editor.Mode(),
			CreatedAt: time.Now(),
		}
		if err := uc.history.Record(ctx, change); err != nil {
			log.Warn().Err(err).Str("action", session.Action).Msg("failed to record binding change")
		}
	}

	log.Info().Str("action", session.Action).Strs("keys", seqs).Msg("keybinding saved")
	return true, nil
}

// ListHistoryUseCase lists recorded binding changes.
type ListHistoryUseCase struct {
	history repository.BindingHistoryRepository
}

// NewListHistoryUseCase creates a new ListHistoryUseCase.
func NewListHistoryUseCase(history repository.BindingHistoryRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{history: history}
}

// DefaultHistoryLimit is used when a non-positive limit is requested.
const DefaultHistoryLimit = 20

// Execute returns recent changes for action, or for all actions when empty.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, action string, limit int) ([]*entity.BindingChange, error) {
	if uc == nil || uc.history == nil {
		return nil, fmt.Errorf("history repository is nil")
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return uc.history.Recent(ctx, action, limit)
}

func resolveKeyset(ctx context.Context, provider port.KeybindingsProvider, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	active, err := provider.ActiveKeyset(ctx)
	if err != nil {
		return "", fmt.Errorf("active keyset: %w", err)
	}
	return active, nil
}
