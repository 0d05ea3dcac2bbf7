package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tair/feedback-service/internal/config"
	"github.com/tair/feedback-service/internal/directory/domain"
	"github.com/tair/feedback-service/internal/directory/repository"
	"github.com/tair/feedback-service/internal/schema"
	"github.com/tair/feedback-service/pkg/logger"
)

var (
	seedUsers = []domain.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
	}
	seedProducts = []domain.Product{
		{ID: 10, Name: "Desk Lamp"},
		{ID: 11, Name: "Kettle"},
	}
)

func seedCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users and products for local development",
		Long: `Insert demo users (ids 1, 2) and products (ids 10, 11) that are missing.
On PostgreSQL the users and products id sequences are advanced past the
seeded ids afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			if err := schema.Migrate(db); err != nil {
				return err
			}
			return seed(repository.NewGormDirectoryRepository(db))
		},
	}
}

// seed inserts the demo rows that are missing. Running it twice is harmless.
func seed(repo domain.DirectoryRepository) error {
	for i := range seedUsers {
		user := seedUsers[i]
		_, err := repo.FindUserByID(user.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := repo.CreateUser(&user); err != nil {
			return fmt.Errorf("seed user %s: %w", user.Username, err)
		}
		logger.Logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("Seeded user")
	}

	for i := range seedProducts {
		product := seedProducts[i]
		_, err := repo.FindProductByID(product.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := repo.CreateProduct(&product); err != nil {
			return fmt.Errorf("seed product %s: %w", product.Name, err)
		}
		logger.Logger.Info().Uint("product_id", product.ID).Str("name", product.Name).Msg("Seeded product")
	}
	return repo.SyncIDSequences()
}
