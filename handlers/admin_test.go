package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/cadyjko/slogan-vote/models"
	"github.com/cadyjko/slogan-vote/testutil"
)

func newAdminHandler(env *testEnv) *AdminHandler {
	return NewAdminHandler(env.svc, env.cat, env.store, env.confirms, env.cfg)
}

func TestAdminStats(t *testing.T) {
	env := setupEnv(t)
	handler := newAdminHandler(env)

	testutil.SeedVote(t, env.db, "alice", 1, true)
	testutil.SeedVote(t, env.db, "alice", 2, true)
	testutil.SeedVote(t, env.db, "bob", 3, false)

	req := testutil.MakeRequest("GET", "/admin/stats", nil, nil)
	w := httptest.NewRecorder()
	handler.Stats(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AdminStatsResponse
	testutil.AssertJSON(t, w, &resp)

	want := models.AdminStatsResponse{
		FinalizedVoters: 1,
		FinalizedVotes:  2,
		PendingVoters:   1,
		Slogans:         3,
	}
	if resp != want {
		t.Errorf("stats = %+v, want %+v", resp, want)
	}
}

func TestAdminListVoters(t *testing.T) {
	env := setupEnv(t)
	handler := newAdminHandler(env)

	testutil.SeedVote(t, env.db, "alice", 1, true)
	testutil.SeedVote(t, env.db, "bob", 2, false)

	req := testutil.MakeRequest("GET", "/admin/voters", nil, nil)
	w := httptest.NewRecorder()
	handler.ListVoters(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.VoterSummary
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != 2 {
		t.Fatalf("expected 2 voters, got %d", len(resp))
	}
	if resp[0].Voter != "alice" || resp[0].State != models.StateFinalized || resp[0].Count != 1 {
		t.Errorf("unexpected alice summary: %+v", resp[0])
	}
	if resp[1].Voter != "bob" || resp[1].State != models.StateSelecting {
		t.Errorf("unexpected bob summary: %+v", resp[1])
	}
}

func TestAdminReloadSlogans(t *testing.T) {
	env := setupEnv(t)
	handler := newAdminHandler(env)

	// Build a real workbook with a replacement catalog
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"id", "slogan"},
		{10, "brand new ten"},
		{11, "brand new eleven"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "slogans.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	f.Close()

	req := testutil.MakeRequest("POST", "/admin/slogans/reload", models.ReloadSlogansRequest{Path: path}, nil)
	w := httptest.NewRecorder()
	handler.ReloadSlogans(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ReloadSlogansResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Count)
	}
	if env.cat.Contains(1) || !env.cat.Contains(10) {
		t.Error("catalog not replaced")
	}
}

func TestAdminReloadSlogansFailures(t *testing.T) {
	env := setupEnv(t)
	handler := newAdminHandler(env)

	t.Run("no path configured", func(t *testing.T) {
		env.cfg.SloganFile = ""
		h := NewAdminHandler(env.svc, env.cat, env.store, env.confirms, env.cfg)
		req := testutil.MakeRequest("POST", "/admin/slogans/reload", nil, nil)
		w := httptest.NewRecorder()
		h.ReloadSlogans(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing workbook", func(t *testing.T) {
		body := models.ReloadSlogansRequest{Path: filepath.Join(t.TempDir(), "nope.xlsx")}
		req := testutil.MakeRequest("POST", "/admin/slogans/reload", body, nil)
		w := httptest.NewRecorder()
		handler.ReloadSlogans(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	// The loaded catalog survives failed reloads
	if env.cat.Len() != 3 {
		t.Errorf("catalog changed by failed reload: %d entries", env.cat.Len())
	}
}

func TestAdminDeleteVoterFlow(t *testing.T) {
	env := setupEnv(t)
	handler := newAdminHandler(env)

	testutil.SeedVote(t, env.db, "alice", 1, true)
	testutil.SeedVote(t, env.db, "alice", 2, true)

	// Request a confirmation token
	req := testutil.MakeRequest("POST", "/admin/voters/alice/delete-request", nil, nil)
	req.SetPathValue("voter", "alice")
	w := httptest.NewRecorder()
	handler.RequestDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var pending models.DeleteRequestResponse
	testutil.AssertJSON(t, w, &pending)
	if pending.ConfirmToken == "" {
		t.Fatal("empty confirm token")
	}

	// Wrong token is rejected and consumes nothing
	req = testutil.MakeRequest("POST", "/admin/voters/alice/delete-confirm",
		models.DeleteConfirmRequest{ConfirmToken: "wrong"}, nil)
	req.SetPathValue("voter", "alice")
	w = httptest.NewRecorder()
	handler.ConfirmDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Correct token purges the voter
	req = testutil.MakeRequest("POST", "/admin/voters/alice/delete-confirm",
		models.DeleteConfirmRequest{ConfirmToken: pending.ConfirmToken}, nil)
	req.SetPathValue("voter", "alice")
	w = httptest.NewRecorder()
	handler.ConfirmDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DeleteVoterResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Deleted || resp.Rows != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}

	// The token is one-shot
	req = testutil.MakeRequest("POST", "/admin/voters/alice/delete-confirm",
		models.DeleteConfirmRequest{ConfirmToken: pending.ConfirmToken}, nil)
	req.SetPathValue("voter", "alice")
	w = httptest.NewRecorder()
	handler.ConfirmDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestAdminDeleteCancel(t *testing.T) {
	env := setupEnv(t)
	handler := newAdminHandler(env)

	req := testutil.MakeRequest("POST", "/admin/voters/alice/delete-request", nil, nil)
	req.SetPathValue("voter", "alice")
	w := httptest.NewRecorder()
	handler.RequestDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var pending models.DeleteRequestResponse
	testutil.AssertJSON(t, w, &pending)

	req = testutil.MakeRequest("POST", "/admin/voters/alice/delete-cancel", nil, nil)
	req.SetPathValue("voter", "alice")
	w = httptest.NewRecorder()
	handler.CancelDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Cancelled token no longer confirms
	req = testutil.MakeRequest("POST", "/admin/voters/alice/delete-confirm",
		models.DeleteConfirmRequest{ConfirmToken: pending.ConfirmToken}, nil)
	req.SetPathValue("voter", "alice")
	w = httptest.NewRecorder()
	handler.ConfirmDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Nothing pending to cancel anymore
	req = testutil.MakeRequest("POST", "/admin/voters/alice/delete-cancel", nil, nil)
	req.SetPathValue("voter", "alice")
	w = httptest.NewRecorder()
	handler.CancelDeleteVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
