// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"github.com/cadyjko/slogan-vote/models"
)

// DeriveState computes the voter lifecycle state from the voter's rows.
// Pure function: no rows means not started, any non-finalized row means
// selecting, all rows finalized means finalized. A mixed set violates
// the all-or-nothing finalization invariant and is reported as corrupt.
func DeriveState(rows []models.VoteRecord) (string, error) {
	if len(rows) == 0 {
		return models.StateNotStarted, nil
	}

	finalized := 0
	for _, rec := range rows {
		if rec.Finalized {
			finalized++
		}
	}

	switch finalized {
	case 0:
		return models.StateSelecting, nil
	case len(rows):
		return models.StateFinalized, nil
	default:
		return "", ErrLedgerCorrupt
	}
}

// CanMutate reports whether selection writes are legal in this state.
func CanMutate(state string) bool {
	return state == models.StateNotStarted || state == models.StateSelecting
}

// CanFinalize reports whether a finalize is legal: not yet finalized and
// a selection count within [1, maxVotes].
func CanFinalize(state string, selectionCount, maxVotes int) bool {
	if state == models.StateFinalized {
		return false
	}
	return selectionCount >= 1 && selectionCount <= maxVotes
}
