// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Slogan catalog
CREATE TABLE IF NOT EXISTS slogans (
    id INTEGER PRIMARY KEY,
    text TEXT NOT NULL
);

-- Vote ledger: one row per (voter, slogan) pair the voter has selected.
-- Absence of a row means "not currently selected". No foreign key to
-- slogans: catalog membership is checked at write time so an
-- administrative catalog reload cannot orphan the constraint.
CREATE TABLE IF NOT EXISTS votes (
    voter_id TEXT NOT NULL,
    slogan_id INTEGER NOT NULL,
    finalized BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (voter_id, slogan_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_voter_id ON votes(voter_id);
CREATE INDEX IF NOT EXISTS idx_votes_finalized ON votes(finalized);
`
