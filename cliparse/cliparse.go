package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKey     string
	MaxVotes     int
	SloganFile   string
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("slogan-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Voting config
	fs.IntVar(&cfg.MaxVotes, "m", 0, "Maximum selections per voter")
	fs.StringVar(&cfg.SloganFile, "slogans", "", "Slogan workbook (.xlsx) used to seed or reload the catalog")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8321 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.MaxVotes == 0 {
		if maxStr := os.Getenv("MAX_VOTES"); maxStr != "" {
			maxVotes, err := strconv.Atoi(maxStr)
			if err != nil {
				return Config{}, errors.New("invalid MAX_VOTES env variable")
			}
			cfg.MaxVotes = maxVotes
		} else {
			cfg.MaxVotes = 20 // default
		}
	}
	if cfg.MaxVotes < 1 {
		return Config{}, errors.New("MAX_VOTES must be at least 1")
	}

	if cfg.SloganFile == "" {
		cfg.SloganFile = os.Getenv("SLOGAN_FILE")
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	return cfg, nil
}
