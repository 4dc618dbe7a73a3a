package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/springscaffold/internal/db"
)

func TestGetDB_CreatesStateDir(t *testing.T) {
	out := t.TempDir()
	t.Cleanup(func() { db.Close() })

	conn, err := db.GetDB(out)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, ".spring-scaffold", "journal.db"))
	require.NoError(t, err)

	var count int
	err = conn.QueryRow("SELECT COUNT(*) FROM journal_entries").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	again, err := db.GetDB(out)
	require.NoError(t, err)
	assert.Same(t, conn, again)
}

func TestInitSchema_Idempotent(t *testing.T) {
	out := t.TempDir()
	t.Cleanup(func() { db.Close() })

	conn, err := db.GetDB(out)
	require.NoError(t, err)
	assert.NoError(t, db.InitSchema(conn))
}

func TestGetDBPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", ".spring-scaffold", "journal.db"), db.GetDBPath("out"))
}
