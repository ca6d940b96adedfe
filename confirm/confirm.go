// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package confirm

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Pending is an outstanding confirmation challenge for one voter.
type Pending struct {
	Token     string
	ExpiresAt time.Time
}

// Registry issues short-lived one-shot tokens that gate destructive
// admin actions. A purge needs two calls: request a token, then confirm
// with it. Tokens live in memory only; a restart cancels all pending
// confirmations, which is the safe direction.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]Pending
	now     func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:     ttl,
		pending: make(map[string]Pending),
		now:     time.Now,
	}
}

// Request issues a fresh token for the voter, replacing any earlier
// outstanding one.
func (r *Registry) Request(voterID string) Pending {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Pending{
		Token:     uuid.NewString(),
		ExpiresAt: r.now().Add(r.ttl),
	}
	r.pending[voterID] = p
	return p
}

// Confirm consumes the voter's pending token. It succeeds at most once
// per Request; expired or mismatched tokens leave nothing consumed.
func (r *Registry) Confirm(voterID, token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pending[voterID]
	if !ok {
		return false
	}
	if r.now().After(p.ExpiresAt) {
		delete(r.pending, voterID)
		return false
	}
	if p.Token != token {
		return false
	}
	delete(r.pending, voterID)
	return true
}

// Cancel drops the voter's pending token, if any.
func (r *Registry) Cancel(voterID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pending[voterID]
	delete(r.pending, voterID)
	return ok
}
