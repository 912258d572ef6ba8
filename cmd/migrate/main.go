package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aayushkuntal/piepay-server/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	db, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	migrationsDir := filepath.Join(wd, "migrations")

	logger.Info().Str("dir", migrationsDir).Msg("applying migrations")

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	logger.Info().Msg("migrations applied")

	return nil
}
