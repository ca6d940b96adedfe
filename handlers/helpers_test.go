package handlers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/cadyjko/slogan-vote/catalog"
	"github.com/cadyjko/slogan-vote/cliparse"
	"github.com/cadyjko/slogan-vote/confirm"
	"github.com/cadyjko/slogan-vote/ledger"
	"github.com/cadyjko/slogan-vote/testutil"
	"github.com/cadyjko/slogan-vote/voting"
)

// testEnv bundles the real service stack over a throwaway sqlite file.
type testEnv struct {
	db       *sql.DB
	cfg      cliparse.Config
	cat      *catalog.Catalog
	store    *ledger.Store
	svc      *voting.Service
	confirms *confirm.Registry
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testutil.SeedSlogans(t, db, map[int]string{
		1: "quality first",
		2: "customer obsession",
		3: "ship it",
	})

	cfg := testutil.GetTestConfig()
	cat := catalog.New(db)
	if _, err := cat.Load(context.Background()); err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}

	store := ledger.New(db)
	return &testEnv{
		db:       db,
		cfg:      cfg,
		cat:      cat,
		store:    store,
		svc:      voting.NewService(store, cat, cfg.MaxVotes),
		confirms: confirm.NewRegistry(time.Minute),
	}
}
