package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/keyedit/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestBindingHistoryRepository_RecordAndRecent(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "keyedit.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewBindingHistoryRepository(lazy)

	assert.False(t, lazy.IsInitialized())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	changes := []*entity.BindingChange{
		{Keyset: "classic", Action: "copy", OldKeys: []string{"<Control-Key-c>"}, NewKeys: []string{"<Control-Key-k>"}, CreatedAt: base},
		{Keyset: "classic", Action: "paste", OldKeys: nil, NewKeys: []string{"<Alt-Key-v>", "<Meta-Key-v>"}, Mode: entity.EntryModeAdvanced, CreatedAt: base.Add(time.Minute)},
		{Keyset: "classic", Action: "copy", OldKeys: []string{"<Control-Key-k>"}, NewKeys: []string{"<Key-F7>"}, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, c := range changes {
		require.NoError(t, repo.Record(ctx, c))
		assert.NotZero(t, c.ID)
	}
	assert.True(t, lazy.IsInitialized())

	all, err := repo.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"<Key-F7>"}, all[0].NewKeys)
	assert.Equal(t, "paste", all[1].Action)
	assert.Equal(t, entity.EntryModeAdvanced, all[1].Mode)
	assert.Equal(t, []string{}, all[1].OldKeys)
	assert.True(t, all[2].CreatedAt.Equal(base))

	copies, err := repo.Recent(ctx, "copy", 10)
	require.NoError(t, err)
	require.Len(t, copies, 2)
	for _, c := range copies {
		assert.Equal(t, "copy", c.Action)
	}

	limited, err := repo.Recent(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, changes[2].ID, limited[0].ID)
}

func TestBindingHistoryRepository_Empty(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "keyedit.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewBindingHistoryRepository(lazy)

	results, err := repo.Recent(ctx, "", 20)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = repo.Recent(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBindingHistoryRepository_RecordNil(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "keyedit.db"))
	repo := sqlite.NewBindingHistoryRepository(lazy)

	assert.Error(t, repo.Record(testCtx(), nil))
	assert.False(t, lazy.IsInitialized())
}

func TestBindingHistoryRepository_SetsCreatedAt(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "keyedit.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewBindingHistoryRepository(lazy)

	change := &entity.BindingChange{Keyset: "classic", Action: "redo", NewKeys: []string{"<Control-Shift-Key-Z>"}}
	require.NoError(t, repo.Record(ctx, change))
	assert.False(t, change.CreatedAt.IsZero())
}
