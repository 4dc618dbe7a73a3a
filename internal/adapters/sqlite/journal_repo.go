// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/springscaffold/internal/ports/secondary"
)

// JournalRepository implements secondary.JournalRepository with SQLite.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new SQLite journal repository.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Record persists a journal entry and sets its ID.
func (r *JournalRepository) Record(ctx context.Context, entry *secondary.JournalRecord) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO journal_entries (run_id, command, artifact, path, outcome, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		entry.RunID, entry.Command, entry.Artifact, entry.Path, entry.Outcome, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read journal entry id: %w", err)
	}
	entry.ID = id
	entry.CreatedAt = createdAt

	return nil
}

// List retrieves the latest entries, newest first. A non-positive limit returns all.
func (r *JournalRepository) List(ctx context.Context, limit int) ([]*secondary.JournalRecord, error) {
	query := "SELECT id, run_id, command, artifact, path, outcome, created_at FROM journal_entries ORDER BY created_at DESC, id DESC"
	args := []any{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.JournalRecord
	for rows.Next() {
		entry := &secondary.JournalRecord{}
		if err := rows.Scan(&entry.ID, &entry.RunID, &entry.Command, &entry.Artifact, &entry.Path, &entry.Outcome, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

var _ secondary.JournalRepository = (*JournalRepository)(nil)
