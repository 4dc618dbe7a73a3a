package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete journal schema.
//
// This is the single source of truth for the database schema. Repository tests load it
// through GetSchemaSQL() instead of declaring their own tables, so a column referenced
// by repository code but missing here fails with "no such column" at test time.
const SchemaSQL = `
-- Journal entries (one row per generated, skipped or patched artifact)
CREATE TABLE IF NOT EXISTS journal_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	command TEXT NOT NULL,
	artifact TEXT NOT NULL,
	path TEXT NOT NULL,
	outcome TEXT NOT NULL CHECK(outcome IN ('created', 'exists', 'patched', 'unchanged', 'skipped', 'planned')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_run ON journal_entries(run_id);
CREATE INDEX IF NOT EXISTS idx_journal_entries_created ON journal_entries(created_at);
`

// InitSchema creates the journal tables on conn if they do not exist.
func InitSchema(conn *sql.DB) error {
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}
