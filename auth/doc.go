// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth validates the shared admin API key.

Admin routes require the X-Admin-Key header; the value is compared
against the configured key with a constant-time comparison:

	if err := auth.ValidateAdminKey(presented, cfg.AdminKey); err != nil {
		// reject with 401
	}

Voter identity is a plain display name carried in the URL path. Voters
are trusted participants of a closed election, so there is no voter
token scheme here.
*/
package auth
