//go:build gtk

package gtkaccel

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/keyedit/internal/domain/entity"
)

// New creates a validator backed by gtk_accelerator_parse.
func New(platform entity.Platform) (*Validator, error) {
	return newValidator(platform, func(accel string) bool {
		keyval, mods, ok := gtk.AcceleratorParse(accel)
		return ok && gtk.AcceleratorValid(keyval, mods)
	}), nil
}
