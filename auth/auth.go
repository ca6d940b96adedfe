// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks the presented key against the configured key.
// Comparison is constant-time; an empty configured key never validates.
func ValidateAdminKey(presented, configured string) error {
	if configured == "" {
		return ErrInvalidAdminKey
	}
	if !hmac.Equal([]byte(presented), []byte(configured)) {
		return ErrInvalidAdminKey
	}
	return nil
}
