package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/prefiction/backend/internal/config"
	"github.com/prefiction/backend/internal/logging"
	"github.com/prefiction/backend/internal/repository"
)

// Applies the submissions schema to whichever backend the environment
// selects. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("connect failed", "error", err)
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, repository.SubmissionSchemaPostgres); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
		slog.Info("migration complete", "backend", "postgres")
		return
	}

	db, err := repository.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		logging.Fatal("open sqlite failed", "error", err, "path", cfg.SQLitePath)
	}
	defer db.Close()
	if _, err := db.ExecContext(ctx, repository.SubmissionSchemaSQLite); err != nil {
		logging.Fatal("migration failed", "error", err)
	}
	slog.Info("migration complete", "backend", "sqlite", "path", cfg.SQLitePath)
}
