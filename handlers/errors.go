// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cadyjko/slogan-vote/middleware"
	"github.com/cadyjko/slogan-vote/models"
	"github.com/cadyjko/slogan-vote/voting"
)

// writeVotingError maps service failures onto HTTP statuses. Validation
// failures are the caller's problem; a partial apply is retryable and
// says so; a corrupt ledger is ours.
func writeVotingError(w http.ResponseWriter, err error) {
	var partial *voting.PartialApplyError

	switch {
	case errors.Is(err, voting.ErrAlreadyFinalized):
		middleware.ErrorResponse(w, http.StatusConflict, "Ballot is already finalized")
	case errors.Is(err, voting.ErrLimitExceeded):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, voting.ErrEmptySelection):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Cannot finalize an empty selection")
	case errors.Is(err, voting.ErrUnknownSlogan):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, voting.ErrLedgerCorrupt):
		slog.Error("corrupt ledger detected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Vote ledger is inconsistent")
	case errors.As(err, &partial):
		middleware.JSONResponse(w, http.StatusBadGateway, models.ErrorResponse{
			Error:     http.StatusText(http.StatusBadGateway),
			Message:   partial.Error(),
			FailedIDs: partial.FailedIDs,
		})
	default:
		slog.Error("vote store error", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Vote store unavailable, retry later")
	}
}
