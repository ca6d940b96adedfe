// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - WithAdminKey: X-Admin-Key gate for admin routes
  - CORS: cross-origin headers and preflight handling

# JSON Helpers

JSONResponse, ErrorResponse and ParseJSONBody keep handlers free of
encoding boilerplate:

	middleware.JSONResponse(w, http.StatusOK, response)
	middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
*/
package middleware
