// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cadyjko/slogan-vote/catalog"
	"github.com/cadyjko/slogan-vote/cliparse"
	"github.com/cadyjko/slogan-vote/confirm"
	"github.com/cadyjko/slogan-vote/ledger"
	"github.com/cadyjko/slogan-vote/middleware"
	"github.com/cadyjko/slogan-vote/models"
	"github.com/cadyjko/slogan-vote/voting"
)

type AdminHandler struct {
	svc      *voting.Service
	cat      *catalog.Catalog
	store    *ledger.Store
	confirms *confirm.Registry
	cfg      cliparse.Config
}

func NewAdminHandler(svc *voting.Service, cat *catalog.Catalog, store *ledger.Store, confirms *confirm.Registry, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: svc, cat: cat, store: store, confirms: confirms, cfg: cfg}
}

// summaryState classifies a voter from their aggregate counts. A voter
// with both finalized and open rows shows up as "corrupt" so the admin
// listing surfaces the anomaly instead of hiding it.
func summaryState(v ledger.VoterCounts) string {
	switch {
	case v.Rows == 0:
		return models.StateNotStarted
	case v.FinalizedRows == 0:
		return models.StateSelecting
	case v.FinalizedRows == v.Rows:
		return models.StateFinalized
	default:
		return "corrupt"
	}
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	voters, err := h.store.Voters(r.Context())
	if err != nil {
		writeVotingError(w, err)
		return
	}

	stats := models.AdminStatsResponse{Slogans: h.cat.Len()}
	for _, v := range voters {
		if summaryState(v) == models.StateFinalized {
			stats.FinalizedVoters++
			stats.FinalizedVotes += v.FinalizedRows
		} else {
			stats.PendingVoters++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// ListVoters handles GET /admin/voters
func (h *AdminHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.store.Voters(r.Context())
	if err != nil {
		writeVotingError(w, err)
		return
	}

	summaries := make([]models.VoterSummary, 0, len(voters))
	for _, v := range voters {
		summaries = append(summaries, models.VoterSummary{
			Voter:     v.VoterID,
			State:     summaryState(v),
			Count:     v.Rows,
			UpdatedAt: v.LastUpdatedAt,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// ReloadSlogans handles POST /admin/slogans/reload
// Replaces the whole catalog from a workbook. Meant for the quiet
// window before voting opens; finalized ballots keep their ids either
// way.
func (h *AdminHandler) ReloadSlogans(w http.ResponseWriter, r *http.Request) {
	var req models.ReloadSlogansRequest
	if r.ContentLength > 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	path := req.Path
	if path == "" {
		path = h.cfg.SloganFile
	}
	if path == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No slogan workbook configured")
		return
	}

	slogans, err := catalog.ReadWorkbook(path, catalog.DefaultIDHeader, catalog.DefaultTextHeader)
	if err != nil {
		slog.Error("workbook ingestion failed", "path", path, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read workbook: "+err.Error())
		return
	}

	if err := h.cat.Replace(r.Context(), slogans); err != nil {
		slog.Error("catalog replace failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to replace slogans")
		return
	}

	slog.Info("slogan catalog replaced", "path", path, "count", len(slogans))
	middleware.JSONResponse(w, http.StatusOK, models.ReloadSlogansResponse{Count: len(slogans)})
}

// RequestDeleteVoter handles POST /admin/voters/{voter}/delete-request
// First leg of the destructive purge: hand back a short-lived token the
// admin must echo to confirm.
func (h *AdminHandler) RequestDeleteVoter(w http.ResponseWriter, r *http.Request) {
	voter, ok := voterID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	p := h.confirms.Request(voter)
	middleware.JSONResponse(w, http.StatusOK, models.DeleteRequestResponse{
		ConfirmToken: p.Token,
		ExpiresAt:    p.ExpiresAt,
	})
}

// ConfirmDeleteVoter handles POST /admin/voters/{voter}/delete-confirm
func (h *AdminHandler) ConfirmDeleteVoter(w http.ResponseWriter, r *http.Request) {
	voter, ok := voterID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	var req models.DeleteConfirmRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !h.confirms.Confirm(voter, req.ConfirmToken) {
		middleware.ErrorResponse(w, http.StatusConflict, "No matching pending confirmation, request a new token")
		return
	}

	n, err := h.svc.DeleteVoter(r.Context(), voter)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteVoterResponse{
		Deleted: true,
		Rows:    n,
	})
}

// CancelDeleteVoter handles POST /admin/voters/{voter}/delete-cancel
func (h *AdminHandler) CancelDeleteVoter(w http.ResponseWriter, r *http.Request) {
	voter, ok := voterID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}

	if !h.confirms.Cancel(voter) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No pending confirmation for this voter")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"cancelled": true})
}
