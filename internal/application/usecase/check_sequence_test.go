package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/application/port/mocks"
	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/validation"
)

func TestCheckSequenceUseCase_Basic(t *testing.T) {
	ctx := testContext()
	provider := mocks.NewMockKeybindingsProvider(t)
	provider.EXPECT().GetKeyset(mock.Anything, "classic").Return(sampleKeyset(), nil)

	uc := usecase.NewCheckSequenceUseCase(provider, nil)
	out, err := uc.Execute(ctx, usecase.CheckSequenceInput{
		Keyset:    "classic",
		Modifiers: []string{"Control"},
		FinalKey:  "c",
		Platform:  entity.PlatformLinux,
	})

	require.NoError(t, err)
	assert.Equal(t, "<Control-Key-c>", out.Sequence)
	assert.Equal(t, entity.EntryModeBasic, out.Mode)
	assert.False(t, out.Accepted())
	assert.ErrorIs(t, out.Err, validation.ErrDuplicateBinding)
}

func TestCheckSequenceUseCase_Raw(t *testing.T) {
	ctx := testContext()
	validator := mocks.NewMockHostBindingValidator(t)
	validator.EXPECT().Accepts(mock.Anything, "<Control-x><Control-y>").Return(nil)

	uc := usecase.NewCheckSequenceUseCase(nil, validator)
	out, err := uc.Execute(ctx, usecase.CheckSequenceInput{Raw: "<Control-x><Control-y>"})

	require.NoError(t, err)
	assert.Equal(t, entity.EntryModeAdvanced, out.Mode)
	assert.True(t, out.Accepted())
}

func TestCheckSequenceUseCase_BadInput(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewCheckSequenceUseCase(nil, nil)

	_, err := uc.Execute(ctx, usecase.CheckSequenceInput{Modifiers: []string{"Hyper"}, FinalKey: "a", Platform: entity.PlatformLinux})
	require.ErrorIs(t, err, usecase.ErrUnknownModifier)

	_, err = uc.Execute(ctx, usecase.CheckSequenceInput{Modifiers: []string{"Control"}, FinalKey: "Escape", Platform: entity.PlatformLinux})
	require.ErrorIs(t, err, usecase.ErrUnknownFinalKey)

	out, err := uc.Execute(ctx, usecase.CheckSequenceInput{})
	require.NoError(t, err)
	assert.ErrorIs(t, out.Err, validation.ErrEmptySelection)
}
