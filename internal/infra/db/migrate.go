package db

import (
	"fmt"

	"bookit/internal/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// MigrateUp applies pending goose migrations from migrationsPath.
func MigrateUp(cfg config.DBConfig, migrationsPath string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", cfg.BuildDSN())
	if err != nil {
		return fmt.Errorf("failed to open DB for migration: %w", err)
	}
	defer sqlDB.Close()

	if err := goose.Up(sqlDB, migrationsPath); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}

	return nil
}
