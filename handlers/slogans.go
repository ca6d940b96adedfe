// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/cadyjko/slogan-vote/catalog"
	"github.com/cadyjko/slogan-vote/middleware"
	"github.com/cadyjko/slogan-vote/models"
)

type SloganHandler struct {
	cat *catalog.Catalog
}

func NewSloganHandler(cat *catalog.Catalog) *SloganHandler {
	return &SloganHandler{cat: cat}
}

// List handles GET /slogans
// The order is stable across calls (ascending id), so clients can page
// over the list themselves.
func (h *SloganHandler) List(w http.ResponseWriter, r *http.Request) {
	slogans := h.cat.All()
	middleware.JSONResponse(w, http.StatusOK, models.SloganListResponse{
		Slogans: slogans,
		Total:   len(slogans),
	})
}
