// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/cadyjko/slogan-vote/cliparse"
	"github.com/cadyjko/slogan-vote/ledger"
	"github.com/cadyjko/slogan-vote/middleware"
	"github.com/cadyjko/slogan-vote/models"
	"github.com/cadyjko/slogan-vote/voting"
)

type ResultsHandler struct {
	svc   *voting.Service
	store *ledger.Store
	cfg   cliparse.Config
}

func NewResultsHandler(svc *voting.Service, store *ledger.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, store: store, cfg: cfg}
}

// ListResults handles GET /results
// Only finalized ballots count; open selections are invisible here.
func (h *ResultsHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.Results(r.Context())
	if err != nil {
		writeVotingError(w, err)
		return
	}

	voters, err := h.store.Voters(r.Context())
	if err != nil {
		writeVotingError(w, err)
		return
	}
	finalized := 0
	for _, v := range voters {
		if v.Rows > 0 && v.FinalizedRows == v.Rows {
			finalized++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Results:         results,
		FinalizedVoters: finalized,
	})
}
