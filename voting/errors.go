// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
)

// Business failures. Validation errors are terminal for the request and
// must reach the user; store failures are retryable; a corrupt ledger
// aborts the request rather than guessing a repair.
var (
	ErrAlreadyFinalized = errors.New("ballot already finalized")
	ErrLimitExceeded    = errors.New("selection exceeds the vote limit")
	ErrEmptySelection   = errors.New("selection is empty")
	ErrUnknownSlogan    = errors.New("unknown slogan id")
	ErrLedgerCorrupt    = errors.New("ledger corrupt: voter has both finalized and non-finalized rows")
)

// PartialApplyError reports the slogan ids whose delete/upsert failed
// during reconciliation. Every sub-operation is idempotent, so retrying
// the same apply converges.
type PartialApplyError struct {
	FailedIDs []int
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("selection partially applied: %d operations failed, retry with the same selection", len(e.FailedIDs))
}
