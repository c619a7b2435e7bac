package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// full list is re-run on every startup.
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
	// Body composition inputs from the most recent energy calculation.
	// A single row keyed 'default'; results are never stored, only the
	// inputs used to pre-fill the next form.
	`CREATE TABLE IF NOT EXISTS profile (
		id        TEXT PRIMARY KEY DEFAULT 'default',
		sex       TEXT NOT NULL DEFAULT 'male'
		          CHECK(sex IN ('male','female')),
		age       INTEGER NOT NULL DEFAULT 30,
		weight    REAL NOT NULL DEFAULT 70,
		height    REAL NOT NULL DEFAULT 170,
		units     TEXT NOT NULL DEFAULT 'metric'
		          CHECK(units IN ('metric','imperial')),
		activity  TEXT NOT NULL DEFAULT 'moderate'
		          CHECK(activity IN ('sedentary','light','moderate','active','very_active')),
		updated_at TEXT NOT NULL DEFAULT ''
	)`,

	// Katch-McArdle support: chosen formula plus the body fat it needs.
	`ALTER TABLE profile ADD COLUMN formula TEXT NOT NULL DEFAULT 'mifflin-st-jeor'`,
	`ALTER TABLE profile ADD COLUMN body_fat_pct REAL NOT NULL DEFAULT 0`,
}
