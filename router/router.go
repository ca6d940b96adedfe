// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/cadyjko/slogan-vote/catalog"
	"github.com/cadyjko/slogan-vote/cliparse"
	"github.com/cadyjko/slogan-vote/confirm"
	"github.com/cadyjko/slogan-vote/handlers"
	"github.com/cadyjko/slogan-vote/ledger"
	"github.com/cadyjko/slogan-vote/middleware"
	"github.com/cadyjko/slogan-vote/voting"
)

// deleteConfirmTTL bounds how long an admin purge token stays valid.
const deleteConfirmTTL = time.Minute

func NewRouter(db *sql.DB, cfg cliparse.Config, cat *catalog.Catalog) *http.ServeMux {
	mux := http.NewServeMux()

	store := ledger.New(db)
	svc := voting.NewService(store, cat, cfg.MaxVotes)
	confirms := confirm.NewRegistry(deleteConfirmTTL)

	// Initialize handlers
	voterHandler := handlers.NewVoterHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, store, cfg)
	sloganHandler := handlers.NewSloganHandler(cat)
	adminHandler := handlers.NewAdminHandler(svc, cat, store, confirms, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations (public)
	mux.HandleFunc("GET /voters/{voter}/state", middleware.WithLogging(voterHandler.GetState))
	mux.HandleFunc("PUT /voters/{voter}/selection", middleware.WithLogging(voterHandler.ApplySelection))
	mux.HandleFunc("POST /voters/{voter}/finalize", middleware.WithLogging(voterHandler.FinalizeVote))

	// Catalog and results (public)
	mux.HandleFunc("GET /slogans", middleware.WithLogging(sloganHandler.List))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.ListResults))

	// Admin operations (shared-key header)
	mux.HandleFunc("GET /admin/stats", middleware.WithLogging(middleware.WithAdminKey(cfg.AdminKey, adminHandler.Stats)))
	mux.HandleFunc("GET /admin/voters", middleware.WithLogging(middleware.WithAdminKey(cfg.AdminKey, adminHandler.ListVoters)))
	mux.HandleFunc("POST /admin/slogans/reload", middleware.WithLogging(middleware.WithAdminKey(cfg.AdminKey, adminHandler.ReloadSlogans)))
	mux.HandleFunc("POST /admin/voters/{voter}/delete-request", middleware.WithLogging(middleware.WithAdminKey(cfg.AdminKey, adminHandler.RequestDeleteVoter)))
	mux.HandleFunc("POST /admin/voters/{voter}/delete-confirm", middleware.WithLogging(middleware.WithAdminKey(cfg.AdminKey, adminHandler.ConfirmDeleteVoter)))
	mux.HandleFunc("POST /admin/voters/{voter}/delete-cancel", middleware.WithLogging(middleware.WithAdminKey(cfg.AdminKey, adminHandler.CancelDeleteVoter)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("slogan-vote API v1"))
	})

	return mux
}
