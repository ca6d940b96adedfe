// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the slogan voting
API.

# Handler Types

Each handler is a struct with its service dependencies:

  - VoterHandler: voter state, selection reconciliation, finalize
  - ResultsHandler: finalized tallies
  - SloganHandler: the slogan catalog listing
  - AdminHandler: stats, voter listing, catalog reload, guarded purge

Handlers are created via constructor functions:

	voterHandler := handlers.NewVoterHandler(svc, cfg)

# Voting Flow

Voters are identified by name in the path. A ballot moves one way:

	GET  /voters/{voter}/state     → GetState (derived, never stored)
	PUT  /voters/{voter}/selection → ApplySelection (full desired set)
	POST /voters/{voter}/finalize  → FinalizeVote (one-way seal)

ApplySelection carries the complete desired selection; the server
diffs it against stored rows and issues only the minimal writes.
After finalize, selection writes return 409 and re-finalizing is an
idempotent success.

# Error Mapping

writeVotingError translates service errors to statuses: 409 for a
sealed ballot, 422 for limit or empty-selection violations, 400 for
unknown slogan ids, 502 with failed ids for a partial apply, 503 for
an unreachable store, 500 for a corrupt ledger.

# Admin Surface

Admin operations require the X-Admin-Key header. Purging a voter takes
two calls: delete-request issues an expiring token, delete-confirm
echoes it back.
*/
package handlers
