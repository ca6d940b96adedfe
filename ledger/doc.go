// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the durable store of per-(voter, slogan) vote rows.

# Contract

  - Upsert is idempotent: created_at is preserved, updated_at advances
  - Delete of an absent key is a no-op returning false
  - SetFinalizedForVoter is a single bulk UPDATE, so the per-voter flip
    is atomic (all rows or none)
  - Every call carries a bounded timeout; a timed-out call is
    failed-retryable, never assumed succeeded

# Civil Time

All vote times are civil time in a fixed UTC+8 zone. Instants are
written as UTC and converted at the read boundary:

	rec.CreatedAt.In(ledger.Beijing)

happens inside this package, so callers only ever see UTC+8 times no
matter where the service runs or which backend stores the rows.

# Mutation Discipline

Rows are mutated only through the reconciler and finalizer in package
voting (plus the administrative PurgeVoter override). Nothing else
writes to the votes table.
*/
package ledger
