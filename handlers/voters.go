// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/cadyjko/slogan-vote/cliparse"
	"github.com/cadyjko/slogan-vote/middleware"
	"github.com/cadyjko/slogan-vote/models"
	"github.com/cadyjko/slogan-vote/voting"
)

type VoterHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewVoterHandler(svc *voting.Service, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{svc: svc, cfg: cfg}
}

// voterID extracts and validates the {voter} path segment.
func voterID(r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.PathValue("voter"))
	return id, id != ""
}

// GetState handles GET /voters/{voter}/state
func (h *VoterHandler) GetState(w http.ResponseWriter, r *http.Request) {
	voter, ok := voterID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	state, ids, err := h.svc.State(r.Context(), voter)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterStateResponse{
		Voter:     voter,
		State:     state,
		SloganIDs: ids,
		Count:     len(ids),
	})
}

// ApplySelection handles PUT /voters/{voter}/selection
// The body carries the full desired selection; the server computes the
// minimal diff against what is stored.
func (h *VoterHandler) ApplySelection(w http.ResponseWriter, r *http.Request) {
	voter, ok := voterID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	var req models.ApplySelectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := h.svc.Apply(r.Context(), voter, req.SloganIDs)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ApplySelectionResponse{
		Applied: true,
		Added:   res.Added,
		Removed: res.Removed,
		Count:   res.Count,
		Message: "Selection saved",
	})
}

// FinalizeVote handles POST /voters/{voter}/finalize
func (h *VoterHandler) FinalizeVote(w http.ResponseWriter, r *http.Request) {
	voter, ok := voterID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	res, err := h.svc.Finalize(r.Context(), voter)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	message := "Vote finalized, thank you"
	if res.Already {
		message = "Vote was already finalized"
	}

	middleware.JSONResponse(w, http.StatusOK, models.FinalizeResponse{
		Finalized: true,
		Already:   res.Already,
		Count:     res.Count,
		Message:   message,
	})
}
