// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package voting holds the ballot rules: deriving a voter's lifecycle
// state from their ledger rows, reconciling a desired selection with
// minimal idempotent writes, and the one-way finalize. State is never
// stored; it is recomputed from a fresh read on every decision.
package voting
