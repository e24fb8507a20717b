package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// DefaultListLimit caps list queries when the caller passes no limit.
const DefaultListLimit = 50

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS task_records (
			record_id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			agent_id TEXT NOT NULL,
			prompt TEXT NOT NULL,
			result TEXT,
			status TEXT NOT NULL,
			error TEXT,
			priority INTEGER NOT NULL DEFAULT 1,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_task_records_created ON task_records(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_task_records_task ON task_records(task_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordTask inserts one journal row.
func (s *SQLiteStore) RecordTask(ctx context.Context, record *domain.TaskRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO task_records (record_id, task_id, agent_id, prompt, result, status, error, priority, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.RecordID, record.TaskID, record.AgentID, record.Prompt,
		nullString(record.Result), string(record.Status), nullString(record.Error),
		record.Priority, record.DurationMs, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record task: %w", err)
	}
	return nil
}

// ListTasks returns the most recent records first.
func (s *SQLiteStore) ListTasks(ctx context.Context, limit int) ([]domain.TaskRecord, error) {
	return s.queryRecords(ctx,
		`SELECT record_id, task_id, agent_id, prompt, result, status, error, priority, duration_ms, created_at
		 FROM task_records ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		normalizeLimit(limit),
	)
}

// ListTasksByTaskID returns the most recent records for one task_id.
func (s *SQLiteStore) ListTasksByTaskID(ctx context.Context, taskID string, limit int) ([]domain.TaskRecord, error) {
	return s.queryRecords(ctx,
		`SELECT record_id, task_id, agent_id, prompt, result, status, error, priority, duration_ms, created_at
		 FROM task_records WHERE task_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		taskID, normalizeLimit(limit),
	)
}

func (s *SQLiteStore) queryRecords(ctx context.Context, query string, args ...interface{}) ([]domain.TaskRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	records := []domain.TaskRecord{}
	for rows.Next() {
		var r domain.TaskRecord
		var result, errText sql.NullString
		var status string
		if err := rows.Scan(&r.RecordID, &r.TaskID, &r.AgentID, &r.Prompt, &result, &status, &errText, &r.Priority, &r.DurationMs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		r.Result = result.String
		r.Error = errText.String
		r.Status = domain.RecordStatus(status)
		records = append(records, r)
	}
	return records, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
