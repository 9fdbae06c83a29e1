package repository

import (
	"context"

	"github.com/bnema/keyedit/internal/domain/entity"
)

// BindingHistoryRepository stores accepted keybinding changes.
type BindingHistoryRepository interface {
	// Record saves a change and sets its ID.
	Record(ctx context.Context, change *entity.BindingChange) error

	// Recent returns the latest changes, newest first.
	// An empty action matches every action.
	Recent(ctx context.Context, action string, limit int) ([]*entity.BindingChange, error)
}
