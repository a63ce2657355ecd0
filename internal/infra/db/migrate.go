package db

import (
	"context"
	"database/sql"
	"fmt"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS charts (
    fingerprint      TEXT PRIMARY KEY,
    engine_version   TEXT NOT NULL,
    request          JSONB NOT NULL,
    payload          JSONB NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_accessed_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS charts (
    fingerprint      TEXT PRIMARY KEY,
    engine_version   TEXT NOT NULL,
    request          TEXT NOT NULL,
    payload          BLOB NOT NULL,
    created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_accessed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

var chartIndexes = []string{
	// purge by age
	`CREATE INDEX IF NOT EXISTS idx_charts_last_accessed_at ON charts(last_accessed_at)`,
	// purge of superseded engine versions
	`CREATE INDEX IF NOT EXISTS idx_charts_engine_version ON charts(engine_version)`,
}

// MigrateUp creates the chart store schema. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var schema string
	switch dialect {
	case Postgres:
		schema = postgresSchema
	case SQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("migrate: unsupported dialect %q", string(dialect))
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create charts table: %w", err)
	}
	for _, idx := range chartIndexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("create charts index: %w", err)
		}
	}
	return nil
}
