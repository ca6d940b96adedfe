// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open supports two backends behind one query dialect:

	conn, err := db.Open("sqlite", "votes.db")
	conn, err := db.Open("postgres", "postgres://...")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.

# Tables

  - slogans: the fixed candidate catalog (id, text)
  - votes: per-(voter_id, slogan_id) selection rows with a finalized
    flag and created_at/updated_at audit timestamps

# Timestamps

votes timestamps are written as UTC instants and converted to the fixed
UTC+8 civil zone at the read boundary (see package ledger). The schema
itself is timezone-agnostic so the same DDL works on both backends.
*/
package db
