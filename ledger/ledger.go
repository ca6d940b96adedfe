// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cadyjko/slogan-vote/models"
)

// Beijing is the fixed civil timezone for all vote times. Every
// timestamp leaving this package is in this zone, independent of the
// host clock's locale.
var Beijing = time.FixedZone("UTC+8", 8*60*60)

// opTimeout bounds every ledger call; callers treat a timeout as
// failed-retryable, never as succeeded.
const opTimeout = 5 * time.Second

// Store is the durable vote ledger. Rows are keyed by
// (voter_id, slogan_id); absence of a row means "not selected".
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// withTimeout attaches the ledger deadline unless the caller already
// carries one.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, opTimeout)
}

// Upsert inserts or refreshes the row for (voter, slogan). Idempotent:
// a repeated call keeps the original created_at and advances only
// updated_at (and the finalized flag).
func (s *Store) Upsert(ctx context.Context, voterID string, sloganID int, finalized bool) (models.VoteRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	// Stored as a UTC instant; converted back to the civil zone on read.
	now := time.Now().UTC()

	var createdAt, updatedAt time.Time
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO votes (voter_id, slogan_id, finalized, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (voter_id, slogan_id)
		DO UPDATE SET finalized = excluded.finalized, updated_at = excluded.updated_at
		RETURNING created_at, updated_at
	`, voterID, sloganID, finalized, now).Scan(&createdAt, &updatedAt)
	if err != nil {
		return models.VoteRecord{}, fmt.Errorf("upsert vote: %w", err)
	}

	return models.VoteRecord{
		VoterID:   voterID,
		SloganID:  sloganID,
		Finalized: finalized,
		CreatedAt: createdAt.In(Beijing),
		UpdatedAt: updatedAt.In(Beijing),
	}, nil
}

// Delete removes the row for (voter, slogan). Deleting an absent row is
// a no-op returning false, not an error.
func (s *Store) Delete(ctx context.Context, voterID string, sloganID int) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM votes WHERE voter_id = $1 AND slogan_id = $2
	`, voterID, sloganID)
	if err != nil {
		return false, fmt.Errorf("delete vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete vote: %w", err)
	}
	return n > 0, nil
}

// ListByVoter returns the voter's rows ordered by slogan id.
func (s *Store) ListByVoter(ctx context.Context, voterID string) ([]models.VoteRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT voter_id, slogan_id, finalized, created_at, updated_at
		FROM votes
		WHERE voter_id = $1
		ORDER BY slogan_id
	`, voterID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListAll returns every voter's rows keyed by voter id.
func (s *Store) ListAll(ctx context.Context) (map[string][]models.VoteRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT voter_id, slogan_id, finalized, created_at, updated_at
		FROM votes
		ORDER BY voter_id, slogan_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list all votes: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	all := make(map[string][]models.VoteRecord)
	for _, rec := range records {
		all[rec.VoterID] = append(all[rec.VoterID], rec)
	}
	return all, nil
}

// SetFinalizedForVoter flips the finalized flag on every row of one
// voter in a single statement, so the per-voter flip is all-or-nothing.
// Returns the number of rows updated.
func (s *Store) SetFinalizedForVoter(ctx context.Context, voterID string, finalized bool) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `
		UPDATE votes SET finalized = $2, updated_at = $3 WHERE voter_id = $1
	`, voterID, finalized, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("set finalized: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("set finalized: %w", err)
	}
	return n, nil
}

// FinalizedTallies aggregates finalized votes per slogan, most votes
// first, ties broken by ascending slogan id.
func (s *Store) FinalizedTallies(ctx context.Context) ([]models.Tally, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT slogan_id, COUNT(*) AS votes
		FROM votes
		WHERE finalized
		GROUP BY slogan_id
		ORDER BY votes DESC, slogan_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("finalized tallies: %w", err)
	}
	defer rows.Close()

	tallies := []models.Tally{}
	for rows.Next() {
		var t models.Tally
		if err := rows.Scan(&t.SloganID, &t.Votes); err != nil {
			return nil, fmt.Errorf("finalized tallies: %w", err)
		}
		tallies = append(tallies, t)
	}
	return tallies, rows.Err()
}

// PurgeVoter deletes every row of one voter regardless of finalized
// state. Administrative override only; normal deletion goes through the
// reconciler and stops at finalization.
func (s *Store) PurgeVoter(ctx context.Context, voterID string) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM votes WHERE voter_id = $1
	`, voterID)
	if err != nil {
		return 0, fmt.Errorf("purge voter: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge voter: %w", err)
	}
	return n, nil
}

// VoterCounts is a per-voter aggregate used by the admin listing.
type VoterCounts struct {
	VoterID       string
	Rows          int
	FinalizedRows int
	LastUpdatedAt time.Time
}

// Voters returns one aggregate per known voter, ordered by voter id.
func (s *Store) Voters(ctx context.Context) ([]VoterCounts, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT voter_id,
		       COUNT(*),
		       SUM(CASE WHEN finalized THEN 1 ELSE 0 END),
		       MAX(updated_at)
		FROM votes
		GROUP BY voter_id
		ORDER BY voter_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}
	defer rows.Close()

	voters := []VoterCounts{}
	for rows.Next() {
		var v VoterCounts
		var last any
		if err := rows.Scan(&v.VoterID, &v.Rows, &v.FinalizedRows, &last); err != nil {
			return nil, fmt.Errorf("list voters: %w", err)
		}
		ts, err := decodeTime(last)
		if err != nil {
			return nil, fmt.Errorf("list voters: %w", err)
		}
		v.LastUpdatedAt = ts.In(Beijing)
		voters = append(voters, v)
	}
	return voters, rows.Err()
}

// decodeTime normalizes a timestamp scanned from an aggregate
// expression. MAX(updated_at) carries no declared column type on
// sqlite, so the driver hands back the stored text instead of a
// time.Time; postgres delivers a time.Time directly.
func decodeTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return parseStoredTime(t)
	case []byte:
		return parseStoredTime(string(t))
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp value of type %T", v)
	}
}

// Layouts the sqlite driver may have used to store a time.Time.
var storedTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

func parseStoredTime(s string) (time.Time, error) {
	for _, layout := range storedTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

func scanRecords(rows *sql.Rows) ([]models.VoteRecord, error) {
	records := []models.VoteRecord{}
	for rows.Next() {
		var rec models.VoteRecord
		if err := rows.Scan(&rec.VoterID, &rec.SloganID, &rec.Finalized, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		rec.CreatedAt = rec.CreatedAt.In(Beijing)
		rec.UpdatedAt = rec.UpdatedAt.In(Beijing)
		records = append(records, rec)
	}
	return records, rows.Err()
}
