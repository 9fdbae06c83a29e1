//go:build !gtk

package gtkaccel

import "github.com/bnema/keyedit/internal/domain/entity"

// New reports ErrUnavailable; build with -tags gtk to enable GTK validation.
func New(_ entity.Platform) (*Validator, error) {
	return nil, ErrUnavailable
}
