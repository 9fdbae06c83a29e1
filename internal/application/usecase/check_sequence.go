package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/domain/entity"
)

// CheckSequenceInput describes a sequence to check without opening a dialog.
// Raw selects advanced entry; otherwise Modifiers and FinalKey drive basic entry.
type CheckSequenceInput struct {
	Keyset    string
	Raw       string
	Modifiers []string
	FinalKey  string
	Platform  entity.Platform
}

// CheckSequenceOutput is the outcome of a check.
type CheckSequenceOutput struct {
	Sequence string
	Mode     entity.EntryMode
	Err      error
}

// Accepted reports whether the sequence passed every check.
func (o CheckSequenceOutput) Accepted() bool { return o.Err == nil }

// CheckSequenceUseCase runs a candidate through the same pipeline as the dialog.
type CheckSequenceUseCase struct {
	provider  port.KeybindingsProvider
	validator port.HostBindingValidator
}

// NewCheckSequenceUseCase creates a new CheckSequenceUseCase. provider and
// validator may be nil: the duplicate or engine check is then skipped.
func NewCheckSequenceUseCase(provider port.KeybindingsProvider, validator port.HostBindingValidator) *CheckSequenceUseCase {
	return &CheckSequenceUseCase{provider: provider, validator: validator}
}

// Execute drives a headless editor and reports the verdict. Only setup
// failures are returned as error.
func (uc *CheckSequenceUseCase) Execute(ctx context.Context, in CheckSequenceInput) (CheckSequenceOutput, error) {
	var existing entity.ExistingBindings
	if uc.provider != nil {
		name, err := resolveKeyset(ctx, uc.provider, in.Keyset)
		if err != nil {
			return CheckSequenceOutput{}, err
		}
		keyset, err := uc.provider.GetKeyset(ctx, name)
		if err != nil {
			return CheckSequenceOutput{}, err
		}
		existing = keyset.Existing()
	}

	platform := in.Platform
	if platform == "" {
		platform = entity.CurrentPlatform()
	}
	opts := []EditorOption{WithPlatform(platform)}
	if uc.validator != nil {
		opts = append(opts, WithHostValidator(uc.validator))
	}
	editor := NewKeyBindingEditor("check", "", existing, opts...)

	if strings.TrimSpace(in.Raw) != "" || (len(in.Modifiers) == 0 && in.FinalKey == "") {
		editor.SwitchMode(entity.EntryModeAdvanced)
		if err := editor.SetKeyString(in.Raw); err != nil {
			return CheckSequenceOutput{}, err
		}
	} else {
		for _, m := range in.Modifiers {
			if err := editor.ToggleModifier(m); err != nil {
				return CheckSequenceOutput{}, fmt.Errorf("modifier %q: %w", m, err)
			}
		}
		if in.FinalKey != "" {
			if err := editor.SelectFinalKey(in.FinalKey); err != nil {
				return CheckSequenceOutput{}, fmt.Errorf("key %q: %w", in.FinalKey, err)
			}
		}
	}

	out := CheckSequenceOutput{Sequence: strings.TrimSpace(editor.KeyString()), Mode: editor.Mode()}
	out.Err = editor.OK(ctx)
	return out, nil
}
