// Copyright (c) 2026 cadyjko.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags win over environment variables; environment variables win over
defaults. Secrets should come from the environment (a .env file is
loaded by main before parsing).

# Settings

Required:

  - DATABASE_URL (-d): connection string or sqlite file path
  - ADMIN_KEY (--admin-key): shared key for the admin API

Optional:

  - PORT (-p): server port (default: 8321)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAX_VOTES (-m): selection limit per voter (default: 20)
  - SLOGAN_FILE (--slogans): xlsx workbook for catalog seeding/reload
*/
package cliparse
