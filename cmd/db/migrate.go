package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marek-a-m/vigor/internal/config"
	"github.com/marek-a-m/vigor/internal/db"
	"github.com/marek-a-m/vigor/internal/migrations/postgres"
	"github.com/marek-a-m/vigor/internal/paths"
	"github.com/marek-a-m/vigor/internal/repository"
)

// migrateCmd applies pending migrations to whichever reading store the
// environment selects: Postgres when DATABASE_URL is set, the local sqlite
// file otherwise.
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return err
			}

			if cfg.DatabaseURL != "" {
				pool, err := repository.Connect(cmd.Context(), cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer pool.Close()

				if err := postgres.Apply(cmd.Context(), pool); err != nil {
					return err
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}

			path := cfg.SQLitePath
			if path == "" {
				p, err := paths.DB()
				if err != nil {
					return err
				}
				path = p
			}

			sqlDB, err := db.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer func() {
				_ = sqlDB.Close()
			}()

			fmt.Println("Migrations applied successfully")
			return nil
		},
	}
}
