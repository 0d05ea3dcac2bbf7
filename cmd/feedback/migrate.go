package main

import (
	"github.com/spf13/cobra"

	"github.com/tair/feedback-service/internal/config"
	"github.com/tair/feedback-service/internal/schema"
	"github.com/tair/feedback-service/pkg/logger"
)

func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			if err := schema.Migrate(db); err != nil {
				return err
			}
			logger.Logger.Info().Msg("Migrations applied")
			return nil
		},
	}
}
