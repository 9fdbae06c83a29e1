package gtkaccel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
	"github.com/bnema/keyedit/internal/infrastructure/tkengine"
)

func TestToAccelerator(t *testing.T) {
	p := tkengine.NewParser(entity.PlatformDarwin)

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "<Control-Key-a>", want: "<Control>a"},
		{in: "<Control-Shift-Key-Z>", want: "<Control><Shift>Z"},
		{in: "<Key-F5>", want: "F5"},
		{in: "<Alt-Option-Key-x>", want: "<Alt>x"},
		{in: "<Command-Key-s>", want: "<Meta>s"},
		{in: "<Control-x><Control-y>", wantErr: true},
		{in: "<Double-Button-1>", wantErr: true},
		{in: "<Lock-Key-a>", wantErr: true},
		{in: "<Key>", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			seq, err := p.Parse(tt.in)
			require.NoError(t, err)
			got, err := ToAccelerator(seq)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_Accepts(t *testing.T) {
	var asked []string
	v := newValidator(entity.PlatformLinux, func(accel string) bool {
		asked = append(asked, accel)
		return accel != "<Control>Kanji"
	})
	ctx := context.Background()

	require.NoError(t, v.Accepts(ctx, "<Control-Key-a>"))
	assert.Equal(t, []string{"<Control>a"}, asked)

	err := v.Accepts(ctx, "<Control-Key-Kanji>")
	require.ErrorIs(t, err, validation.ErrEngineRejected)
	assert.Contains(t, validation.Message(err), `GTK cannot parse accelerator "<Control>Kanji"`)

	err = v.Accepts(ctx, "<Control-Key-Foo>")
	require.ErrorIs(t, err, validation.ErrEngineRejected)
	assert.Contains(t, validation.Message(err), `bad event type or keysym "Foo"`)

	err = v.Accepts(ctx, "<Control-x><Control-y>")
	require.ErrorIs(t, err, validation.ErrEngineRejected)
	assert.Len(t, asked, 2)
}
