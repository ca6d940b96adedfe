// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the slogan voting API server.

Slogan Vote runs a company-wide slogan election: each named voter picks
up to a configured number of slogans, every change is persisted as it
happens, and a one-way finalize seals the ballot. Results count only
finalized ballots.

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	DATABASE_URL=votes.db ADMIN_KEY=secret go run main.go

Or with flags:

	go run main.go -p 8321 -d votes.db -t sqlite -admin-key secret

A .env file in the working directory is loaded automatically if
present.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - ADMIN_KEY (-admin-key): shared secret for the admin endpoints

Optional settings:

  - PORT (-p): server port (default: 8321)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAX_VOTES (-m): selection limit per voter (default: 20)
  - SLOGAN_FILE (-slogans): .xlsx workbook used to seed or reload the
    slogan catalog

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (voters, results, slogans, admin)
  - router: route definitions using Go 1.22+ routing
  - voting: ballot rules (state derivation, reconciliation, finalize)
  - ledger: durable vote rows with UTC+8 civil timestamps
  - catalog: slogan catalog with xlsx ingestion
  - confirm: expiring tokens guarding destructive admin actions
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: admin key validation
  - db: connection setup and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
