package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableKV          = "kv"
	tableAttempts    = "attempts"
	tableLLMRequests = "llm_requests"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attempts (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL,
		level_id    INTEGER NOT NULL,
		score       INTEGER NOT NULL,
		total       INTEGER NOT NULL,
		percentage  INTEGER NOT NULL,
		passed      INTEGER NOT NULL,
		recorded_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS attempts_level_recorded ON attempts (level_id, recorded_at)`,
	`CREATE TABLE IF NOT EXISTS llm_requests (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL,
		output_tokens INTEGER NOT NULL,
		latency_ms    INTEGER NOT NULL,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		created_at    INTEGER NOT NULL
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
