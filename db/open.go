// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. Supported types are
// "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite).
//
// SQL in this codebase uses $1-style placeholders, which both drivers
// accept, so every query runs unchanged against either backend.
func Open(databaseType, url string) (*sql.DB, error) {
	switch databaseType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite":
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer; more connections just trade
		// lock errors for queueing.
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q (want sqlite or postgres)", databaseType)
	}
}
