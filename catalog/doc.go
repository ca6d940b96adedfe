// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog is the read-mostly slogan lookup.

# Lookup

The catalog is loaded once from the slogans table and held in memory:

	cat := catalog.New(conn)
	n, err := cat.Load(ctx)

Get, Contains and All serve the reconciliation hot path; All returns a
stable id-ascending order from which any page window can be sliced.

# Ingestion

ReadWorkbook parses an XLSX slogan list (the format the slogan source
is published in). The header row must contain the id and text columns;
a missing required column fails the whole load.

# Administrative Reload

Replace rewrites the slogans table and swaps the in-memory set. It must
not run while non-finalized vote writes are in flight, since slogan
membership is checked against this catalog at vote-write time. This is
a documented precondition of the admin reload, not a lock.
*/
package catalog
