// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the slogan voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, cat)

# Endpoints

Health:

	GET /health

Voting (public):

	GET  /voters/{voter}/state     - Derived voter state and selection
	PUT  /voters/{voter}/selection - Apply the full desired selection
	POST /voters/{voter}/finalize  - Seal the ballot

Catalog and results (public):

	GET /slogans - Slogan list, ascending id
	GET /results - Finalized tallies

Admin (requires X-Admin-Key):

	GET  /admin/stats                            - Aggregate counters
	GET  /admin/voters                           - Per-voter status
	POST /admin/slogans/reload                   - Replace catalog from workbook
	POST /admin/voters/{voter}/delete-request    - Issue purge token
	POST /admin/voters/{voter}/delete-confirm    - Execute purge
	POST /admin/voters/{voter}/delete-cancel     - Drop pending token

# Wiring

NewRouter builds the ledger store, the voting service, and the
confirmation registry, then injects them into the handlers. The
catalog is passed in because main loads or seeds it before the server
starts.
*/
package router
