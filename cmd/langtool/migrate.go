package main

import (
	"errors"

	"github.com/spf13/cobra"

	"langtool/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Database.URL == "" {
			return errors.New("migrate: DATABASE_URL is not set")
		}
		return database.RunMigrations(cfg.Database.URL, appLogger)
	},
}
