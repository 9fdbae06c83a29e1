package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/application/port/mocks"
	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/domain/entity"
	repomocks "github.com/bnema/keyedit/internal/domain/repository/mocks"
)

func sampleKeyset() entity.Keyset {
	return entity.Keyset{
		"copy":                {"<Control-Key-c>", "<Control-Key-C>"},
		"interrupt-execution": {"<Control-Key-c>", "<Control-Key-C>"},
		"paste":               {"<Control-Key-v>", "<Control-Key-V>"},
		"run-module":          {"<Key-F5>"},
	}
}

func TestGetKeysetUseCase_Execute(t *testing.T) {
	t.Run("uses active keyset when name is empty", func(t *testing.T) {
		provider := mocks.NewMockKeybindingsProvider(t)
		provider.EXPECT().ActiveKeyset(mock.Anything).Return("classic", nil)
		provider.EXPECT().GetKeyset(mock.Anything, "classic").Return(sampleKeyset(), nil)

		uc := usecase.NewGetKeysetUseCase(provider)
		view, err := uc.Execute(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "classic", view.Name)
		require.Len(t, view.Bindings, 4)
		assert.Equal(t, "copy", view.Bindings[0].Action)
		assert.True(t, view.Bindings[0].Shared)
		assert.True(t, view.Bindings[1].Shared)
		assert.False(t, view.Bindings[2].Shared)
		assert.Equal(t, []string{"<Key-F5>"}, view.Bindings[3].Sequences)
	})

	t.Run("returns provider error", func(t *testing.T) {
		provider := mocks.NewMockKeybindingsProvider(t)
		provider.EXPECT().GetKeyset(mock.Anything, "missing").Return(nil, errors.New("unknown keyset"))

		_, err := usecase.NewGetKeysetUseCase(provider).Execute(context.Background(), "missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown keyset")
	})

	t.Run("returns error when provider is nil", func(t *testing.T) {
		_, err := usecase.NewGetKeysetUseCase(nil).Execute(context.Background(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider is nil")
	})
}

func TestListKeysetsUseCase_Execute(t *testing.T) {
	provider := mocks.NewMockKeybindingsProvider(t)
	provider.EXPECT().ListKeysets(mock.Anything).Return([]string{"classic", "classic-mac"}, nil)

	names, err := usecase.NewListKeysetsUseCase(provider).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"classic", "classic-mac"}, names)
}

func TestSetKeybindingUseCase_PrepareAndApply(t *testing.T) {
	ctx := testContext()
	provider := mocks.NewMockKeybindingsProvider(t)
	saver := mocks.NewMockKeybindingsSaver(t)
	history := repomocks.NewMockBindingHistoryRepository(t)

	provider.EXPECT().GetKeyset(mock.Anything, "classic").Return(sampleKeyset(), nil)
	saver.EXPECT().SetKeybinding(mock.Anything, port.SetKeybindingRequest{
		Keyset:    "classic",
		Action:    "paste",
		Sequences: []string{"<Control-Key-y>"},
	}).Return(nil)
	history.EXPECT().Record(mock.Anything, mock.AnythingOfType("*entity.BindingChange")).
		Run(func(_ context.Context, change *entity.BindingChange) {
			assert.Equal(t, "paste", change.Action)
			assert.Equal(t, []string{"<Control-Key-v>", "<Control-Key-V>"}, change.OldKeys)
			assert.Equal(t, []string{"<Control-Key-y>"}, change.NewKeys)
			assert.Equal(t, entity.EntryModeBasic, change.Mode)
			assert.False(t, change.CreatedAt.IsZero())
		}).
		Return(nil)

	uc := usecase.NewSetKeybindingUseCase(provider, saver, history)
	session, err := uc.Prepare(ctx, usecase.EditKeybindingInput{Keyset: "classic", Action: "paste"},
		usecase.WithPlatform(entity.PlatformLinux))
	require.NoError(t, err)
	assert.Equal(t, "Key Sequences for 'paste'", session.Editor.Title())

	// The action's own current sequence counts as in use.
	require.NoError(t, session.Editor.ToggleModifier("Control"))
	require.NoError(t, session.Editor.SelectFinalKey("v"))
	require.Error(t, session.Editor.OK(ctx))

	require.NoError(t, session.Editor.SelectFinalKey("y"))
	require.NoError(t, session.Editor.OK(ctx))

	saved, err := uc.Apply(ctx, session)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestSetKeybindingUseCase_ApplySplitsAdvancedResult(t *testing.T) {
	ctx := testContext()
	provider := mocks.NewMockKeybindingsProvider(t)
	saver := mocks.NewMockKeybindingsSaver(t)

	provider.EXPECT().ActiveKeyset(mock.Anything).Return("classic", nil)
	provider.EXPECT().GetKeyset(mock.Anything, "classic").Return(sampleKeyset(), nil)
	saver.EXPECT().SetKeybinding(mock.Anything, port.SetKeybindingRequest{
		Keyset:    "classic",
		Action:    "expand-word",
		Sequences: []string{"<Alt-Key-slash>", "<Meta-Key-slash>"},
	}).Return(nil)

	uc := usecase.NewSetKeybindingUseCase(provider, saver, nil)
	session, err := uc.Prepare(ctx, usecase.EditKeybindingInput{Action: "expand-word", Title: "Expand"})
	require.NoError(t, err)
	assert.Empty(t, session.OldKeys)

	session.Editor.ToggleLevel()
	require.NoError(t, session.Editor.SetKeyString("<Alt-Key-slash> <Meta-Key-slash>"))
	require.NoError(t, session.Editor.OK(ctx))

	saved, err := uc.Apply(ctx, session)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestSetKeybindingUseCase_ApplyCanceled(t *testing.T) {
	ctx := testContext()
	provider := mocks.NewMockKeybindingsProvider(t)
	saver := mocks.NewMockKeybindingsSaver(t)
	provider.EXPECT().GetKeyset(mock.Anything, "classic").Return(sampleKeyset(), nil)

	uc := usecase.NewSetKeybindingUseCase(provider, saver, nil)
	session, err := uc.Prepare(ctx, usecase.EditKeybindingInput{Keyset: "classic", Action: "copy"})
	require.NoError(t, err)

	_, err = uc.Apply(ctx, session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still open")

	session.Editor.Cancel()
	saved, err := uc.Apply(ctx, session)
	require.NoError(t, err)
	assert.False(t, saved)
	saver.AssertNotCalled(t, "SetKeybinding", mock.Anything, mock.Anything)
}

func TestSetKeybindingUseCase_HistoryFailureIsNotFatal(t *testing.T) {
	ctx := testContext()
	provider := mocks.NewMockKeybindingsProvider(t)
	saver := mocks.NewMockKeybindingsSaver(t)
	history := repomocks.NewMockBindingHistoryRepository(t)

	provider.EXPECT().GetKeyset(mock.Anything, "classic").Return(sampleKeyset(), nil)
	saver.EXPECT().SetKeybinding(mock.Anything, mock.Anything).Return(nil)
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewSetKeybindingUseCase(provider, saver, history)
	session, err := uc.Prepare(ctx, usecase.EditKeybindingInput{Keyset: "classic", Action: "run-module"},
		usecase.WithPlatform(entity.PlatformLinux))
	require.NoError(t, err)
	require.NoError(t, session.Editor.SelectFinalKey("F6"))
	require.NoError(t, session.Editor.OK(ctx))

	saved, err := uc.Apply(ctx, session)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestSetKeybindingUseCase_SaveError(t *testing.T) {
	ctx := testContext()
	provider := mocks.NewMockKeybindingsProvider(t)
	saver := mocks.NewMockKeybindingsSaver(t)

	provider.EXPECT().GetKeyset(mock.Anything, "classic").Return(sampleKeyset(), nil)
	saver.EXPECT().SetKeybinding(mock.Anything, mock.Anything).Return(errors.New("read-only"))

	uc := usecase.NewSetKeybindingUseCase(provider, saver, nil)
	session, err := uc.Prepare(ctx, usecase.EditKeybindingInput{Keyset: "classic", Action: "run-module"},
		usecase.WithPlatform(entity.PlatformLinux))
	require.NoError(t, err)
	require.NoError(t, session.Editor.SelectFinalKey("F6"))
	require.NoError(t, session.Editor.OK(ctx))

	saved, err := uc.Apply(ctx, session)
	require.Error(t, err)
	assert.False(t, saved)
	assert.Contains(t, err.Error(), "read-only")
}

func TestSetKeybindingUseCase_PrepareRequiresAction(t *testing.T) {
	provider := mocks.NewMockKeybindingsProvider(t)
	uc := usecase.NewSetKeybindingUseCase(provider, nil, nil)

	_, err := uc.Prepare(context.Background(), usecase.EditKeybindingInput{Keyset: "classic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action is required")
}

func TestListHistoryUseCase_Execute(t *testing.T) {
	history := repomocks.NewMockBindingHistoryRepository(t)
	changes := []*entity.BindingChange{{ID: 2, Action: "copy"}, {ID: 1, Action: "copy"}}
	history.EXPECT().Recent(mock.Anything, "copy", usecase.DefaultHistoryLimit).Return(changes, nil)

	got, err := usecase.NewListHistoryUseCase(history).Execute(context.Background(), "copy", 0)
	require.NoError(t, err)
	assert.Equal(t, changes, got)

	_, err = usecase.NewListHistoryUseCase(nil).Execute(context.Background(), "", 5)
	require.Error(t, err)
}
