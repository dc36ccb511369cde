// Seed populates the product store from the embedded catalog.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/swiftherb/swiftherb-server/internal/catalog"
	"github.com/swiftherb/swiftherb-server/internal/config"
	"github.com/swiftherb/swiftherb-server/internal/store"
)

const seedAttempts = 3

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dbPath := flag.String("db", "", "database path (defaults to DB_PATH)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	products, err := catalog.Load()
	if err != nil {
		slog.Error("Failed to load product catalog", "error", err)
		os.Exit(1)
	}

	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	ctx := context.Background()

	var written int
	for attempt := 1; attempt <= seedAttempts; attempt++ {
		written, err = repo.SeedProducts(ctx, products.All())
		if err == nil {
			break
		}
		if !store.IsConflictError(err) || attempt == seedAttempts {
			slog.Error("Failed to seed product store", "error", err, "attempt", attempt)
			os.Exit(1)
		}
		slog.Warn("Database busy, retrying seed", "attempt", attempt)
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}

	total, err := repo.CountProducts(ctx)
	if err != nil {
		slog.Error("Failed to count products", "error", err)
		os.Exit(1)
	}

	slog.Info("Product store seeded", "written", written, "total", total, "db", cfg.DBPath)
}
