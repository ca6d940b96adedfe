// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/cadyjko/slogan-vote/cliparse"
	dbpkg "github.com/cadyjko/slogan-vote/db"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// Each test gets its own file under t.TempDir, so tests never share
// state and need no external database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := dbpkg.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := dbpkg.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8321,
		DatabaseURL:  "test.db",
		DatabaseType: "sqlite",
		AdminKey:     "test-admin-key",
		MaxVotes:     2,
	}
}

// SeedSlogans inserts the given id to text pairs into the slogans table
func SeedSlogans(t *testing.T, db *sql.DB, texts map[int]string) {
	t.Helper()

	for id, text := range texts {
		_, err := db.Exec(`
			INSERT INTO slogans (id, text) VALUES ($1, $2)
		`, id, text)
		if err != nil {
			t.Fatalf("Failed to seed slogan %d: %v", id, err)
		}
	}
}

// SeedVote inserts a vote row directly, bypassing the reconciler
func SeedVote(t *testing.T, db *sql.DB, voterID string, sloganID int, finalized bool) {
	t.Helper()

	now := time.Now().UTC()
	_, err := db.Exec(`
		INSERT INTO votes (voter_id, slogan_id, finalized, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
	`, voterID, sloganID, finalized, now)
	if err != nil {
		t.Fatalf("Failed to seed vote (%s, %d): %v", voterID, sloganID, err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
