// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
	"github.com/bnema/keyedit/internal/logging"
)

// Editor operation errors. These are caller mistakes, not validation failures.
var (
	ErrWrongMode       = errors.New("operation not available in current entry mode")
	ErrUnknownModifier = errors.New("unknown modifier for platform")
	ErrUnknownFinalKey = errors.New("unknown final key")
	ErrDialogClosed    = errors.New("dialog already closed")
)

// EditorOption configures a KeyBindingEditor.
type EditorOption func(*KeyBindingEditor)

// WithPlatform selects the modifier set. Defaults to the running platform.
func WithPlatform(p entity.Platform) EditorOption {
	return func(e *KeyBindingEditor) {
		e.modifiers = entity.ModifiersForPlatform(p)
	}
}

// WithHostValidator sets the engine used for the final acceptance probe.
func WithHostValidator(v port.HostBindingValidator) EditorOption {
	return func(e *KeyBindingEditor) {
		e.validator = v
	}
}

// KeyBindingEditor is the view-model of the key binding dialog.
// It holds the entry mode, modifier selection, final key selection and the
// candidate string; rendering lives elsewhere.
type KeyBindingEditor struct {
	title    string
	action   string
	existing entity.ExistingBindings

	modifiers entity.ModifierSet
	catalog   *entity.FinalKeyCatalog
	validator port.HostBindingValidator

	mode      entity.EntryMode
	selected  map[string]bool
	finalKey  string
	keyString string

	result string
	closed bool
}

// NewKeyBindingEditor creates an editor in basic mode with an empty candidate.
func NewKeyBindingEditor(title, action string, existing entity.ExistingBindings, opts ...EditorOption) *KeyBindingEditor {
	e := &KeyBindingEditor{
		title:     title,
		action:    action,
		existing:  existing,
		modifiers: entity.ModifiersForPlatform(entity.CurrentPlatform()),
		catalog:   entity.NewFinalKeyCatalog(),
		mode:      entity.EntryModeBasic,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.selected = make(map[string]bool, len(e.modifiers))
	return e
}

// Title returns the dialog title.
func (e *KeyBindingEditor) Title() string { return e.title }

// Action returns the name of the action being bound.
func (e *KeyBindingEditor) Action() string { return e.action }

// Mode returns the current entry mode.
func (e *KeyBindingEditor) Mode() entity.EntryMode { return e.mode }

// Modifiers returns the platform modifiers in their fixed order.
func (e *KeyBindingEditor) Modifiers() entity.ModifierSet {
	out := make(entity.ModifierSet, len(e.modifiers))
	copy(out, e.modifiers)
	return out
}

// Catalog returns the final key catalog.
func (e *KeyBindingEditor) Catalog() *entity.FinalKeyCatalog { return e.catalog }

// KeyString returns the candidate sequence as displayed.
func (e *KeyBindingEditor) KeyString() string { return e.keyString }

// FinalKey returns the selected final key label, or "".
func (e *KeyBindingEditor) FinalKey() string { return e.finalKey }

// IsModifierSelected reports whether a modifier is toggled on.
func (e *KeyBindingEditor) IsModifierSelected(name string) bool { return e.selected[name] }

// SelectedModifiers returns the toggled modifiers in platform order.
func (e *KeyBindingEditor) SelectedModifiers() []string {
	out := make([]string, 0, len(e.modifiers))
	for _, m := range e.modifiers {
		if e.selected[m] {
			out = append(out, m)
		}
	}
	return out
}

// Candidate returns the basic-mode selection.
func (e *KeyBindingEditor) Candidate() entity.CandidateBinding {
	return entity.CandidateBinding{Modifiers: e.SelectedModifiers(), FinalKey: e.finalKey}
}

// Result returns the accepted sequence, or "" when canceled or still open.
func (e *KeyBindingEditor) Result() string { return e.result }

// Closed reports whether the dialog has terminated.
func (e *KeyBindingEditor) Closed() bool { return e.closed }

// ToggleModifier flips one modifier and rebuilds the key string.
func (e *KeyBindingEditor) ToggleModifier(name string) error {
	if e.mode != entity.EntryModeBasic {
		return ErrWrongMode
	}
	if !e.modifiers.Contains(name) {
		return ErrUnknownModifier
	}
	e.selected[name] = !e.selected[name]
	e.buildKeyString()
	return nil
}

// SelectFinalKey picks the final key and rebuilds the key string.
func (e *KeyBindingEditor) SelectFinalKey(key string) error {
	if e.mode != entity.EntryModeBasic {
		return ErrWrongMode
	}
	if !e.catalog.Contains(key) {
		return ErrUnknownFinalKey
	}
	e.finalKey = key
	e.buildKeyString()
	return nil
}

// SetKeyString stores the raw sequence typed in advanced mode.
func (e *KeyBindingEditor) SetKeyString(raw string) error {
	if e.mode != entity.EntryModeAdvanced {
		return ErrWrongMode
	}
	e.keyString = raw
	return nil
}

// ToggleLevel switches between basic and advanced entry, clearing the candidate.
func (e *KeyBindingEditor) ToggleLevel() {
	e.Clear()
	if e.mode == entity.EntryModeBasic {
		e.mode = entity.EntryModeAdvanced
	} else {
		e.mode = entity.EntryModeBasic
	}
}

// SwitchMode moves to mode, clearing the candidate when it changes.
func (e *KeyBindingEditor) SwitchMode(mode entity.EntryMode) {
	if mode != e.mode {
		e.ToggleLevel()
	}
}

// Clear resets modifiers, final key and key string.
func (e *KeyBindingEditor) Clear() {
	for m := range e.selected {
		delete(e.selected, m)
	}
	e.finalKey = ""
	e.keyString = ""
}

func (e *KeyBindingEditor) buildKeyString() {
	e.keyString = e.Candidate().String()
}

// OK validates the candidate and, when it passes, stores it as the result and
// closes the dialog. A rejection is returned for display; the dialog stays open.
func (e *KeyBindingEditor) OK(ctx context.Context) error {
	if e.closed {
		return ErrDialogClosed
	}
	log := logging.FromContext(ctx)

	keys := strings.TrimSpace(e.keyString)
	if keys == "" {
		return validation.ErrEmptySelection
	}

	if e.mode == entity.EntryModeBasic {
		sel := validation.BasicSelection{
			Keys:      keys,
			Modifiers: e.SelectedModifiers(),
			FinalKey:  e.finalKey,
		}
		if err := validation.CheckBasic(sel, e.catalog, e.existing); err != nil {
			log.Debug().Err(err).Str("keys", keys).Msg("key sequence failed basic checks")
			return err
		}
	}

	if e.validator != nil {
		if err := e.validator.Accepts(ctx, keys); err != nil {
			log.Debug().Err(err).Str("keys", keys).Msg("key sequence rejected by host engine")
			return err
		}
	}

	log.Info().Str("action", e.action).Str("keys", keys).Str("mode", e.mode.String()).Msg("key sequence accepted")
	e.result = keys
	e.closed = true
	return nil
}

// Cancel clears the result and closes the dialog without validation.
func (e *KeyBindingEditor) Cancel() {
	e.result = ""
	e.closed = true
}
