package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/config"
	"github.com/tair/feedback-service/pkg/database"
	"github.com/tair/feedback-service/pkg/logger"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var configFile string
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:          "feedback",
		Short:        "Favorites and reviews service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(viper.New(), configFile)
			if err != nil {
				return err
			}
			*cfg = *loaded

			logger.Init(cfg.ServiceName, cfg.IsDevelopment())
			logger.SetLevel(cfg.LogLevel)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to a config file (yaml, json or toml)")

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		seedCommand(cfg),
	)
	return rootCmd
}

// openDatabase connects to the configured driver
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Driver == config.DriverSQLite {
		logger.Logger.Info().Str("path", cfg.SQLitePath).Msg("Using SQLite database")
		return database.NewSQLiteConnection(cfg.SQLitePath)
	}
	return database.NewGormConnection(cfg.Database)
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
