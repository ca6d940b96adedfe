package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cadyjko/slogan-vote/models"
	"github.com/cadyjko/slogan-vote/testutil"
)

// TestFullVotingLifecycle walks one voter through the whole flow:
// browse, select, revise, finalize, get locked out, appear in results.
func TestFullVotingLifecycle(t *testing.T) {
	env := setupEnv(t)
	voterHandler := NewVoterHandler(env.svc, env.cfg)
	resultsHandler := NewResultsHandler(env.svc, env.store, env.cfg)

	apply := func(t *testing.T, ids []int) *httptest.ResponseRecorder {
		t.Helper()
		req := testutil.MakeRequest("PUT", "/voters/alice/selection",
			models.ApplySelectionRequest{SloganIDs: ids}, nil)
		req.SetPathValue("voter", "alice")
		w := httptest.NewRecorder()
		voterHandler.ApplySelection(w, req)
		return w
	}
	state := func(t *testing.T) models.VoterStateResponse {
		t.Helper()
		req := testutil.MakeRequest("GET", "/voters/alice/state", nil, nil)
		req.SetPathValue("voter", "alice")
		w := httptest.NewRecorder()
		voterHandler.GetState(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.VoterStateResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	// Fresh voter
	if s := state(t); s.State != models.StateNotStarted {
		t.Fatalf("initial state = %q", s.State)
	}

	// First selection
	w := apply(t, []int{1, 3})
	testutil.AssertStatus(t, w, http.StatusOK)
	if s := state(t); s.State != models.StateSelecting || s.Count != 2 {
		t.Fatalf("state after apply = %+v", s)
	}

	// Change of heart: swap 3 for 2
	w = apply(t, []int{1, 2})
	testutil.AssertStatus(t, w, http.StatusOK)
	var applied models.ApplySelectionResponse
	testutil.AssertJSON(t, w, &applied)
	if applied.Added != 1 || applied.Removed != 1 {
		t.Fatalf("revision diff = %+v", applied)
	}

	// Finalize
	req := testutil.MakeRequest("POST", "/voters/alice/finalize", nil, nil)
	req.SetPathValue("voter", "alice")
	w = httptest.NewRecorder()
	voterHandler.FinalizeVote(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Locked out now
	w = apply(t, []int{3})
	testutil.AssertStatus(t, w, http.StatusConflict)
	if s := state(t); s.State != models.StateFinalized || s.Count != 2 {
		t.Fatalf("state after finalize = %+v", s)
	}

	// Visible in results
	req = testutil.MakeRequest("GET", "/results", nil, nil)
	w = httptest.NewRecorder()
	resultsHandler.ListResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.FinalizedVoters != 1 || len(results.Results) != 2 {
		t.Fatalf("results = %+v", results)
	}
}
