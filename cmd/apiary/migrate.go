package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/database"
	"github.com/osse101/Apiary_Go/internal/database/postgres"
	_ "github.com/osse101/Apiary_Go/internal/database/sqlite"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured store driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			version, err := migrate(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "%s schema at version %d", cfg.StoreDriver, version)
			return nil
		},
	}
}

func migrate(ctx context.Context, cfg *config.Config) (int64, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return 0, err
		}
		db, err := sqlx.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return 0, err
		}
		defer db.Close()
		return database.Migrate(ctx, db.DB, goose.DialectSQLite3, database.MigrationsDirSQLite)

	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
			database.DefaultMaxIdleTime, database.DefaultMaxConnLifetime)
		if err != nil {
			return 0, err
		}
		defer pool.Close()
		return postgres.Migrate(ctx, pool)

	default:
		return 0, fmt.Errorf("driver %q has no schema", cfg.StoreDriver)
	}
}
