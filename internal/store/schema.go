package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schema lists the statements that create the tables. Every statement is
// idempotent so migrate can run on each Open.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS highscores (
		id          TEXT PRIMARY KEY,
		sequence    INTEGER NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		wpm         REAL NOT NULL,
		cpm         REAL NOT NULL,
		accuracy    REAL NOT NULL,
		language    TEXT NOT NULL,
		difficulty  TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_highscores_wpm ON highscores (wpm DESC)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		sequence    INTEGER NOT NULL UNIQUE,
		set_name    TEXT NOT NULL,
		spaced      INTEGER NOT NULL,
		reviewed    INTEGER NOT NULL,
		correct     INTEGER NOT NULL,
		incorrect   INTEGER NOT NULL,
		overrides   INTEGER NOT NULL,
		mastered    INTEGER NOT NULL,
		total       INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions (created_at)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
