package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range Tables {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_log_entries_activity_date'`).Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_InMemoryJournalMode(t *testing.T) {
	db := openTestDB(t)

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "memory", mode)
}

func TestOpenDB_FileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "streakmind.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrate_LogEntriesUnitCheck(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO log_entries (id, activity, amount, unit, date, timestamp, points, position)
		VALUES (?, 'gym', 1, ?, '2025-06-15', '2025-06-15T10:00:00Z', 10, 0)`
	_, err := db.Exec(insert, "l1", "furlongs")
	assert.Error(t, err, "unknown unit should be rejected by CHECK constraint")

	_, err = db.Exec(insert, "l1", "session")
	assert.NoError(t, err)
}

func TestMigrate_StreakCountNonNegative(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO streaks (activity, count, position) VALUES ('gym', -1, 0)`)
	assert.Error(t, err)
}

func TestMigrate_ActivityChecks(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO activities (name, id, custom_points, visualization, position, created_at)
		VALUES (?, ?, ?, ?, 0, '2025-06-15T10:00:00Z')`
	_, err := db.Exec(insert, "yoga", "a1", nil, "radar")
	assert.Error(t, err, "unknown visualization should be rejected")

	_, err = db.Exec(insert, "yoga", "a1", -2.0, "pie")
	assert.Error(t, err, "negative custom points should be rejected")

	_, err = db.Exec(insert, "yoga", "a1", 2.0, "pie")
	require.NoError(t, err)

	_, err = db.Exec(insert, "yoga", "a2", nil, "pie")
	assert.Error(t, err, "duplicate name should violate primary key")
}

func TestMigrate_ChatRoleCheck(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO chat_messages (id, role, message, timestamp, position)
		VALUES ('m1', 'system', 'hi', '2025-06-15T10:00:00Z', 0)`)
	assert.Error(t, err)
}
