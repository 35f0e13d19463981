package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// The cache is a whole-value key/value mirror: one row per cache key holding
// a serialized JSON document, replaced in full on every write.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cache (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

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
