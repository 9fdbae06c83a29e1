// Package gtkaccel validates key sequences against the GTK accelerator parser.
package gtkaccel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
	"github.com/bnema/keyedit/internal/infrastructure/tkengine"
	"github.com/bnema/keyedit/internal/logging"
)

// ErrUnavailable is returned by New when the binary was built without GTK.
var ErrUnavailable = errors.New("gtk accelerator engine not available in this build (rebuild with -tags gtk)")

// accelParser parses a GTK accelerator string and reports whether GTK accepts it.
type accelParser func(accel string) bool

// Validator translates Tk-style sequences to GTK accelerators and asks GTK to
// parse them. Only single key patterns can become accelerators.
type Validator struct {
	tk    *tkengine.Parser
	parse accelParser
}

func newValidator(platform entity.Platform, parse accelParser) *Validator {
	return &Validator{tk: tkengine.NewParser(platform), parse: parse}
}

var gtkModifiers = map[string]string{
	"Control": "<Control>",
	"Shift":   "<Shift>",
	"Alt":     "<Alt>",
	"Option":  "<Alt>",
	"Meta":    "<Meta>",
	"Command": "<Meta>",
	"Mod1":    "<Alt>",
	"Mod4":    "<Super>",
}

// ToAccelerator renders a parsed sequence as a GTK accelerator string.
func ToAccelerator(seq tkengine.Sequence) (string, error) {
	if len(seq) != 1 {
		return "", fmt.Errorf("GTK accelerators take a single key pattern, got %d", len(seq))
	}
	pat := seq[0]
	if !pat.IsKey() {
		return "", fmt.Errorf("%s is not a key press with a keysym", pat)
	}

	var b strings.Builder
	seen := make(map[string]bool, len(pat.Modifiers))
	for _, m := range pat.Modifiers {
		accel, ok := gtkModifiers[m]
		if !ok {
			return "", fmt.Errorf("modifier %q has no GTK equivalent", m)
		}
		if seen[accel] {
			continue
		}
		seen[accel] = true
		b.WriteString(accel)
	}
	b.WriteString(pat.Detail)
	return b.String(), nil
}

// Accepts reports whether GTK accepts seq as an accelerator.
func (v *Validator) Accepts(ctx context.Context, seq string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	parsed, err := v.tk.Parse(seq)
	if err != nil {
		return validation.NewEngineRejected(seq, err.Error())
	}
	accel, err := ToAccelerator(parsed)
	if err != nil {
		return validation.NewEngineRejected(seq, err.Error())
	}
	if !v.parse(accel) {
		return validation.NewEngineRejected(seq, fmt.Sprintf("GTK cannot parse accelerator %q", accel))
	}
	logging.FromContext(ctx).Debug().Str("sequence", seq).Str("accelerator", accel).Msg("gtk accepted accelerator")
	return nil
}
