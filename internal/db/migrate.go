package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		category        TEXT NOT NULL DEFAULT 'uncategorized',
		target_per_week INTEGER NOT NULL DEFAULT 7
		                CHECK(target_per_week BETWEEN 1 AND 7),
		enabled         INTEGER NOT NULL DEFAULT 1,
		created_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS habit_records (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		habit_id     INTEGER NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		is_completed INTEGER NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		recorded_at  TEXT NOT NULL,
		UNIQUE(habit_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_habit_records_habit_date ON habit_records(habit_id, date)`,

	`CREATE TABLE IF NOT EXISTS pomodoro_sessions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		habit_id         INTEGER REFERENCES habits(id) ON DELETE SET NULL,
		start_time       TEXT NOT NULL,
		end_time         TEXT,
		duration_seconds INTEGER NOT NULL,
		status           TEXT NOT NULL
		                 CHECK(status IN ('running','completed','aborted'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pomodoro_start_time ON pomodoro_sessions(start_time)`,

	`CREATE TABLE IF NOT EXISTS app_config (
		id                  INTEGER PRIMARY KEY CHECK(id = 1),
		work_minutes        INTEGER NOT NULL DEFAULT 25,
		short_break_minutes INTEGER NOT NULL DEFAULT 5,
		long_break_minutes  INTEGER NOT NULL DEFAULT 15,
		long_break_interval INTEGER NOT NULL DEFAULT 4
	)`,

	// Seed default timer configuration
	`INSERT OR IGNORE INTO app_config (id, work_minutes, short_break_minutes, long_break_minutes, long_break_interval)
		VALUES (1, 25, 5, 15, 4)`,

	// Add soft-delete marker to habits (pre-dates the column in older stores)
	`ALTER TABLE habits ADD COLUMN deleted_at TEXT`,
}
