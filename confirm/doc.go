// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package confirm implements the request/confirm handshake that guards
// destructive admin operations with expiring one-shot tokens.
package confirm
