package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Columns added by ALTER TABLE already exist on fresh databases.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Tables lists every table created by Migrate.
var Tables = []string{"activities", "streaks", "log_entries", "chat_messages", "documents"}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		name          TEXT PRIMARY KEY,
		id            TEXT NOT NULL UNIQUE,
		custom_points REAL CHECK(custom_points IS NULL OR custom_points >= 0),
		visualization TEXT NOT NULL
		              CHECK(visualization IN ('heatmap','bar','progress','pie')),
		description   TEXT NOT NULL DEFAULT '',
		position      INTEGER NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS streaks (
		activity TEXT PRIMARY KEY,
		count    INTEGER NOT NULL DEFAULT 0 CHECK(count >= 0),
		position INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS log_entries (
		id        TEXT PRIMARY KEY,
		activity  TEXT NOT NULL,
		amount    REAL NOT NULL,
		unit      TEXT NOT NULL
		          CHECK(unit IN ('questions','minutes','hours','pages','session','distance')),
		date      TEXT NOT NULL,
		message   TEXT NOT NULL DEFAULT '',
		timestamp TEXT NOT NULL,
		points    INTEGER NOT NULL,
		position  INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_log_entries_activity_date ON log_entries(activity, date)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id        TEXT PRIMARY KEY,
		role      TEXT NOT NULL CHECK(role IN ('user','assistant')),
		message   TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		position  INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS documents (
		name       TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Added after the first release.
	`ALTER TABLE activities ADD COLUMN description TEXT NOT NULL DEFAULT ''`,
}
