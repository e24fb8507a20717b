// Package store provides the task journal.
package store

import (
	"context"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// Store records executed tasks.
type Store interface {
	RecordTask(ctx context.Context, record *domain.TaskRecord) error
	ListTasks(ctx context.Context, limit int) ([]domain.TaskRecord, error)
	ListTasksByTaskID(ctx context.Context, taskID string, limit int) ([]domain.TaskRecord, error)
	Close() error
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
