package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// StateDir holds scaffolder state inside the output directory.
	StateDir = ".spring-scaffold"
	// FileName is the journal database file inside StateDir.
	FileName = "journal.db"
)

var db *sql.DB

// GetDB returns the journal connection for outputDir, opening it and creating the
// schema on first use.
func GetDB(outputDir string) (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	dbPath := GetDBPath(outputDir)

	// Ensure state directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", StateDir, err)
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	db = conn
	return db, nil
}

// Close closes the database connection
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// GetDBPath returns the path to the journal database under outputDir.
func GetDBPath(outputDir string) string {
	return filepath.Join(outputDir, StateDir, FileName)
}
