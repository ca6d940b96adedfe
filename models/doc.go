// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types for the slogan vote
service.

# Domain Types

  - Slogan: a selectable item with a stable integer ID and display text
  - VoteRecord: one row per (voter, slogan) pair the voter has selected
  - Tally: finalized vote count for one slogan

# Voter States

Voter state is never stored; it is derived from the voter's VoteRecords:

	no rows                → not_started
	any non-finalized row  → selecting
	any finalized row      → finalized (terminal)

# Wire Types

Request/response structs mirror the HTTP API one-to-one. ErrorResponse
carries an optional failed_ids list so a partially applied selection can
be retried with the same request.
*/
package models
