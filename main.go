package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cadyjko/slogan-vote/catalog"
	"github.com/cadyjko/slogan-vote/cliparse"
	"github.com/cadyjko/slogan-vote/db"
	"github.com/cadyjko/slogan-vote/middleware"
	"github.com/cadyjko/slogan-vote/router"
)

func main() {
	// Local development convenience; production sets real env vars
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Error("failed to load .env file", "error", err)
			os.Exit(1)
		}
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load the slogan catalog; seed from the workbook on first boot
	cat := catalog.New(dbConn)
	ctx := context.Background()
	count, err := cat.Load(ctx)
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	if count == 0 && cfg.SloganFile != "" {
		slogans, err := catalog.ReadWorkbook(cfg.SloganFile, catalog.DefaultIDHeader, catalog.DefaultTextHeader)
		if err != nil {
			slog.Error("workbook ingestion failed", "path", cfg.SloganFile, "error", err)
			os.Exit(1)
		}
		if err := cat.Replace(ctx, slogans); err != nil {
			slog.Error("catalog seeding failed", "error", err)
			os.Exit(1)
		}
		count = len(slogans)
		slog.Info("catalog seeded from workbook", "path", cfg.SloganFile, "count", count)
	}
	if count == 0 {
		slog.Warn("slogan catalog is empty; all selections will be rejected")
	}
	slog.Info("Slogan catalog ready", "count", count, "max_votes", cfg.MaxVotes)

	// Create router
	mux := router.NewRouter(dbConn, cfg, cat)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
