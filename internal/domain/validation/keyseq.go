package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/keyedit/internal/domain/entity"
)

// ErrorTitle is the title of every key sequence error message.
const ErrorTitle = "Key Sequence Error"

// Rejection reasons. All are recoverable: the user edits and retries.
var (
	ErrEmptySelection      = errors.New("no key specified")
	ErrMissingFinalKey     = errors.New("missing final key")
	ErrMissingModifier     = errors.New("no modifier specified")
	ErrDisallowedShiftOnly = errors.New("shift alone not allowed with this key")
	ErrDuplicateBinding    = errors.New("key combination already in use")
	ErrEngineRejected      = errors.New("key sequence rejected by binding engine")
)

// EngineRejectedError carries the host engine's own rejection text.
type EngineRejectedError struct {
	Sequence string
	Reason   string
}

func (e *EngineRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Sequence, e.Reason)
}

// Unwrap lets errors.Is match ErrEngineRejected.
func (e *EngineRejectedError) Unwrap() error {
	return ErrEngineRejected
}

// NewEngineRejected wraps an engine failure.
func NewEngineRejected(sequence, reason string) *EngineRejectedError {
	return &EngineRejectedError{Sequence: sequence, Reason: reason}
}

// Message returns the user-facing text for a rejection.
func Message(err error) string {
	var rejected *EngineRejectedError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rejected):
		return "The entered key sequence is not accepted.\n\nError: " + rejected.Reason
	case errors.Is(err, ErrEmptySelection):
		return "No key specified."
	case errors.Is(err, ErrMissingFinalKey):
		return "Missing the final Key"
	case errors.Is(err, ErrMissingModifier):
		return "No modifier key(s) specified."
	case errors.Is(err, ErrDisallowedShiftOnly):
		return "The shift modifier by itself may not be used with this key symbol."
	case errors.Is(err, ErrDuplicateBinding):
		return "This key combination is already in use."
	default:
		return err.Error()
	}
}

// BasicSelection is what the basic entry mode knows about the candidate.
type BasicSelection struct {
	Keys      string   // assembled sequence
	Modifiers []string // selected modifiers, platform order
	FinalKey  string   // catalog label, empty when none
}

// CheckBasic applies the basic-mode rules in priority order; the first
// failing rule wins.
func CheckBasic(sel BasicSelection, catalog *entity.FinalKeyCatalog, existing entity.ExistingBindings) error {
	standalone := catalog.IsFunctionKey(sel.FinalKey) || catalog.IsNavigationKey(sel.FinalKey)

	switch {
	case !endsWithKeyToken(sel.Keys):
		return ErrMissingFinalKey
	case len(sel.Modifiers) == 0 && !standalone:
		return ErrMissingModifier
	case isShiftOnly(sel.Modifiers) && !standalone && sel.FinalKey != "Tab" && sel.FinalKey != "Space":
		return ErrDisallowedShiftOnly
	case existing.Contains(sel.Keys):
		return ErrDuplicateBinding
	}
	return nil
}

func isShiftOnly(modifiers []string) bool {
	return len(modifiers) == 1 && modifiers[0] == entity.ModifierShift
}

// endsWithKeyToken reports whether the last pattern is "<...Key-detail>".
func endsWithKeyToken(keys string) bool {
	if !strings.HasSuffix(keys, ">") {
		return false
	}
	open := strings.LastIndex(keys, "<")
	if open < 0 {
		return false
	}
	pattern := keys[open+1 : len(keys)-1]
	idx := strings.LastIndex(pattern, "Key-")
	if idx < 0 {
		return false
	}
	if idx > 0 && pattern[idx-1] != '-' {
		return false
	}
	return len(pattern) > idx+len("Key-")
}
