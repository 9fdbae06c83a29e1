package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/keyedit/internal/application/port"
	"github.com/bnema/keyedit/internal/domain/entity"
	"github.com/bnema/keyedit/internal/domain/repository"
	"github.com/bnema/keyedit/internal/logging"
)

const (
	insertBindingChange = `INSERT INTO binding_changes (keyset, action, old_keys, new_keys, mode, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

	selectRecentChanges = `SELECT id, keyset, action, old_keys, new_keys, mode, created_at
FROM binding_changes
WHERE (? = '' OR action = ?)
ORDER BY created_at DESC, id DESC
LIMIT ?`
)

type bindingHistoryRepo struct {
	provider port.DatabaseProvider
	now      func() time.Time
}

// Compile-time interface check.
var _ repository.BindingHistoryRepository = (*bindingHistoryRepo)(nil)

// NewBindingHistoryRepository creates a SQLite-backed change history.
// The database is only opened when the first change is read or written.
func NewBindingHistoryRepository(provider port.DatabaseProvider) repository.BindingHistoryRepository {
	return &bindingHistoryRepo{provider: provider, now: time.Now}
}

func (r *bindingHistoryRepo) Record(ctx context.Context, change *entity.BindingChange) error {
	if change == nil {
		return fmt.Errorf("binding change is nil")
	}
	log := logging.FromContext(ctx)

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	oldKeys, err := encodeKeys(change.OldKeys)
	if err != nil {
		return err
	}
	newKeys, err := encodeKeys(change.NewKeys)
	if err != nil {
		return err
	}
	if change.CreatedAt.IsZero() {
		change.CreatedAt = r.now().UTC()
	}

	res, err := db.ExecContext(ctx, insertBindingChange,
		change.Keyset, change.Action, oldKeys, newKeys, change.Mode.String(), change.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record binding change: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read binding change id: %w", err)
	}
	change.ID = id

	log.Debug().Int64("id", id).Str("action", change.Action).Msg("binding change recorded")
	return nil
}

func (r *bindingHistoryRepo) Recent(ctx context.Context, action string, limit int) ([]*entity.BindingChange, error) {
	if limit <= 0 {
		return []*entity.BindingChange{}, nil
	}

	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectRecentChanges, action, action, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query binding changes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	changes := make([]*entity.BindingChange, 0, limit)
	for rows.Next() {
		change, err := scanBindingChange(rows)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate binding changes: %w", err)
	}
	return changes, nil
}

func scanBindingChange(rows *sql.Rows) (*entity.BindingChange, error) {
	var (
		change           entity.BindingChange
		oldKeys, newKeys string
		mode             string
		createdAt        int64
	)
	if err := rows.Scan(&change.ID, &change.Keyset, &change.Action, &oldKeys, &newKeys, &mode, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to scan binding change: %w", err)
	}
	change.CreatedAt = time.UnixMilli(createdAt).UTC()

	var err error
	if change.OldKeys, err = decodeKeys(oldKeys); err != nil {
		return nil, err
	}
	if change.NewKeys, err = decodeKeys(newKeys); err != nil {
		return nil, err
	}
	if mode == entity.EntryModeAdvanced.String() {
		change.Mode = entity.EntryModeAdvanced
	}
	return &change, nil
}

func encodeKeys(keys []string) (string, error) {
	if keys == nil {
		keys = []string{}
	}
	data, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("failed to encode key sequences: %w", err)
	}
	return string(data), nil
}

func decodeKeys(raw string) ([]string, error) {
	keys := []string{}
	if raw == "" {
		return keys, nil
	}
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("failed to decode key sequences: %w", err)
	}
	return keys, nil
}
