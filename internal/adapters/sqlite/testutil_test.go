// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for tests.
// Do not declare tables in test files; use setupTestDB() and the seed helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/springscaffold/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedEntry inserts a journal row with an explicit timestamp.
func seedEntry(t *testing.T, db *sql.DB, runID, artifact, outcome, createdAt string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO journal_entries (run_id, command, artifact, path, outcome, created_at) VALUES (?, 'model', ?, ?, ?, ?)",
		runID, artifact, "/out/"+artifact+".java", outcome, createdAt,
	)
	if err != nil {
		t.Fatalf("failed to seed journal entry: %v", err)
	}
}
