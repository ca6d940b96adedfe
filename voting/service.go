// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/cadyjko/slogan-vote/models"
)

// Ledger is the slice of the vote store the service mutates. Satisfied
// by *ledger.Store; tests substitute failing implementations.
type Ledger interface {
	Upsert(ctx context.Context, voterID string, sloganID int, finalized bool) (models.VoteRecord, error)
	Delete(ctx context.Context, voterID string, sloganID int) (bool, error)
	ListByVoter(ctx context.Context, voterID string) ([]models.VoteRecord, error)
	SetFinalizedForVoter(ctx context.Context, voterID string, finalized bool) (int64, error)
	FinalizedTallies(ctx context.Context) ([]models.Tally, error)
	PurgeVoter(ctx context.Context, voterID string) (int64, error)
}

// SloganLookup is the slice of the catalog the service validates
// against.
type SloganLookup interface {
	Contains(id int) bool
	Get(id int) (models.Slogan, bool)
}

// Service owns the voter lifecycle: it reconciles desired selections
// against the ledger, derives voter state from fresh reads, and
// performs the one-way finalize. It is the sole writer of
// finalized = true.
//
// Operations for the same voter are serialized through a per-voter
// mutex, so a reconciliation diff can never interleave with a
// concurrent finalize from a duplicate tab or retried request.
// Different voters proceed in parallel.
type Service struct {
	ledger   Ledger
	slogans  SloganLookup
	maxVotes int

	mu     sync.Mutex
	voters map[string]*sync.Mutex
}

func NewService(ledger Ledger, slogans SloganLookup, maxVotes int) *Service {
	return &Service{
		ledger:   ledger,
		slogans:  slogans,
		maxVotes: maxVotes,
		voters:   make(map[string]*sync.Mutex),
	}
}

// lockVoter serializes operations for one voter. Returns the unlock
// function.
func (s *Service) lockVoter(voterID string) func() {
	s.mu.Lock()
	m, ok := s.voters[voterID]
	if !ok {
		m = &sync.Mutex{}
		s.voters[voterID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// State returns the voter's derived lifecycle state and current
// selection, always from a fresh ledger read.
func (s *Service) State(ctx context.Context, voterID string) (string, []int, error) {
	rows, err := s.ledger.ListByVoter(ctx, voterID)
	if err != nil {
		return "", nil, err
	}
	state, err := DeriveState(rows)
	if err != nil {
		return "", nil, err
	}

	ids := make([]int, 0, len(rows))
	for _, rec := range rows {
		ids = append(ids, rec.SloganID)
	}
	sort.Ints(ids)
	return state, ids, nil
}

// ApplyResult describes a completed reconciliation.
type ApplyResult struct {
	Added   int
	Removed int
	Count   int
}

// Apply reconciles the voter's stored selection with the desired set
// using the minimal diff: deletes first, then upserts, so a crash
// mid-way never leaves the stored count above the limit. Each
// sub-operation is idempotent; running Apply twice with the same set is
// a no-op the second time.
func (s *Service) Apply(ctx context.Context, voterID string, desired []int) (ApplyResult, error) {
	desiredSet := make(map[int]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	if len(desiredSet) > s.maxVotes {
		return ApplyResult{}, fmt.Errorf("%w: %d selected, limit %d", ErrLimitExceeded, len(desiredSet), s.maxVotes)
	}
	for id := range desiredSet {
		if !s.slogans.Contains(id) {
			return ApplyResult{}, fmt.Errorf("%w: %d", ErrUnknownSlogan, id)
		}
	}

	unlock := s.lockVoter(voterID)
	defer unlock()

	rows, err := s.ledger.ListByVoter(ctx, voterID)
	if err != nil {
		return ApplyResult{}, err
	}
	state, err := DeriveState(rows)
	if err != nil {
		return ApplyResult{}, err
	}
	if !CanMutate(state) {
		return ApplyResult{}, ErrAlreadyFinalized
	}

	current := make(map[int]bool, len(rows))
	for _, rec := range rows {
		current[rec.SloganID] = true
	}

	var toRemove, toAdd []int
	for id := range current {
		if !desiredSet[id] {
			toRemove = append(toRemove, id)
		}
	}
	for id := range desiredSet {
		if !current[id] {
			toAdd = append(toAdd, id)
		}
	}
	sort.Ints(toRemove)
	sort.Ints(toAdd)

	var failed []int

	// Removes before adds: the stored count dips below the target but
	// never rises above max_votes, even on a crash between operations.
	for _, id := range toRemove {
		if _, err := s.ledger.Delete(ctx, voterID, id); err != nil {
			slog.Warn("selection delete failed", "voter", voterID, "slogan_id", id, "error", err)
			failed = append(failed, id)
		}
	}

	// A failed delete leaves the stored set at its old size; piling the
	// adds on top could push the row count past maxVotes. Defer every
	// add to the retry instead, reporting them as failed so resubmitting
	// the same selection converges.
	if len(failed) > 0 {
		failed = append(failed, toAdd...)
		sort.Ints(failed)
		return ApplyResult{}, &PartialApplyError{FailedIDs: failed}
	}

	for _, id := range toAdd {
		if _, err := s.ledger.Upsert(ctx, voterID, id, false); err != nil {
			slog.Warn("selection upsert failed", "voter", voterID, "slogan_id", id, "error", err)
			failed = append(failed, id)
		}
	}

	if len(failed) > 0 {
		sort.Ints(failed)
		return ApplyResult{}, &PartialApplyError{FailedIDs: failed}
	}

	slog.Info("selection applied",
		"voter", voterID,
		"added", len(toAdd),
		"removed", len(toRemove),
		"count", len(desiredSet),
	)
	return ApplyResult{Added: len(toAdd), Removed: len(toRemove), Count: len(desiredSet)}, nil
}

// FinalizeResult describes a finalize outcome.
type FinalizeResult struct {
	Already bool
	Count   int
}

// Finalize performs the one-way commit. It re-reads the ledger rather
// than trusting any caller-supplied count, closing the race where
// another write landed between display and submit. Re-invocation after
// success is an idempotent success, not an error.
func (s *Service) Finalize(ctx context.Context, voterID string) (FinalizeResult, error) {
	unlock := s.lockVoter(voterID)
	defer unlock()

	rows, err := s.ledger.ListByVoter(ctx, voterID)
	if err != nil {
		return FinalizeResult{}, err
	}
	state, err := DeriveState(rows)
	if err != nil {
		return FinalizeResult{}, err
	}

	if state == models.StateFinalized {
		return FinalizeResult{Already: true, Count: len(rows)}, nil
	}
	if len(rows) == 0 {
		return FinalizeResult{}, ErrEmptySelection
	}
	if len(rows) > s.maxVotes {
		return FinalizeResult{}, fmt.Errorf("%w: %d selected, limit %d", ErrLimitExceeded, len(rows), s.maxVotes)
	}

	n, err := s.ledger.SetFinalizedForVoter(ctx, voterID, true)
	if err != nil {
		return FinalizeResult{}, err
	}

	slog.Info("ballot finalized", "voter", voterID, "count", n)
	return FinalizeResult{Count: int(n)}, nil
}

// Results aggregates finalized votes per slogan, most votes first, ties
// broken by ascending slogan id.
func (s *Service) Results(ctx context.Context) ([]models.ResultRow, error) {
	tallies, err := s.ledger.FinalizedTallies(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.ResultRow, 0, len(tallies))
	for _, t := range tallies {
		row := models.ResultRow{SloganID: t.SloganID, Votes: t.Votes}
		if slogan, ok := s.slogans.Get(t.SloganID); ok {
			row.Text = slogan.Text
		}
		results = append(results, row)
	}
	return results, nil
}

// DeleteVoter purges every row of the voter, finalized or not. This is
// the administrative override of ballot immutability; it still takes
// the voter lock so it cannot interleave with an in-flight apply.
func (s *Service) DeleteVoter(ctx context.Context, voterID string) (int64, error) {
	unlock := s.lockVoter(voterID)
	defer unlock()

	n, err := s.ledger.PurgeVoter(ctx, voterID)
	if err != nil {
		return 0, err
	}

	slog.Info("voter purged", "voter", voterID, "rows", n)
	return n, nil
}
