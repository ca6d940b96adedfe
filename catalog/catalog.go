// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/cadyjko/slogan-vote/models"
)

// insertBatchSize caps a single multi-row insert during Replace.
const insertBatchSize = 50

// Catalog is the in-memory slogan lookup backed by the slogans table.
// Read-mostly; Replace swaps the whole set for administrative reloads.
//
// Replace must not run while non-finalized vote writes are in flight -
// the reconciler checks slogan membership against this catalog at write
// time. That precondition is advisory (documented, not locked): reloads
// are an admin action expected before voting opens.
type Catalog struct {
	db *sql.DB

	mu      sync.RWMutex
	byID    map[int]models.Slogan
	ordered []models.Slogan
}

func New(db *sql.DB) *Catalog {
	return &Catalog{
		db:   db,
		byID: make(map[int]models.Slogan),
	}
}

// Load reads the slogans table into memory, replacing any previous
// contents. Returns the number of slogans loaded.
func (c *Catalog) Load(ctx context.Context) (int, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, text FROM slogans ORDER BY id
	`)
	if err != nil {
		return 0, fmt.Errorf("load slogans: %w", err)
	}
	defer rows.Close()

	slogans := []models.Slogan{}
	for rows.Next() {
		var s models.Slogan
		if err := rows.Scan(&s.ID, &s.Text); err != nil {
			return 0, fmt.Errorf("load slogans: %w", err)
		}
		slogans = append(slogans, s)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("load slogans: %w", err)
	}

	c.swap(slogans)
	return len(slogans), nil
}

// Replace validates the given slogans, rewrites the slogans table in
// one transaction, then swaps the in-memory set.
func (c *Catalog) Replace(ctx context.Context, slogans []models.Slogan) error {
	if err := validate(slogans); err != nil {
		return err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace slogans: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM slogans`); err != nil {
		return fmt.Errorf("replace slogans: %w", err)
	}

	// Batched inserts keep statement size bounded for large catalogs
	for start := 0; start < len(slogans); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(slogans) {
			end = len(slogans)
		}
		for _, s := range slogans[start:end] {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO slogans (id, text) VALUES ($1, $2)
			`, s.ID, s.Text); err != nil {
				return fmt.Errorf("replace slogans: insert %d: %w", s.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace slogans: %w", err)
	}

	c.swap(slogans)
	return nil
}

// Get returns the slogan with the given id.
func (c *Catalog) Get(id int) (models.Slogan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byID[id]
	return s, ok
}

// Contains reports whether id is a valid slogan id.
func (c *Catalog) Contains(id int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.byID[id]
	return ok
}

// All returns every slogan ordered by ascending id. The order is stable
// across calls, so callers can slice page windows deterministically.
func (c *Catalog) All() []models.Slogan {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Slogan, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of slogans.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ordered)
}

func (c *Catalog) swap(slogans []models.Slogan) {
	ordered := make([]models.Slogan, len(slogans))
	copy(ordered, slogans)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	byID := make(map[int]models.Slogan, len(ordered))
	for _, s := range ordered {
		byID[s.ID] = s
	}

	c.mu.Lock()
	c.byID = byID
	c.ordered = ordered
	c.mu.Unlock()
}

func validate(slogans []models.Slogan) error {
	seen := make(map[int]bool, len(slogans))
	for _, s := range slogans {
		if s.ID <= 0 {
			return fmt.Errorf("slogan id %d is not a positive integer", s.ID)
		}
		if s.Text == "" {
			return fmt.Errorf("slogan %d has empty text", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate slogan id %d", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
