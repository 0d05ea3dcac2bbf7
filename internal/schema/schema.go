// Package schema lists the tables this service migrates, in dependency order.
package schema

import (
	"fmt"

	"gorm.io/gorm"

	directory "github.com/tair/feedback-service/internal/directory/domain"
	favorite "github.com/tair/feedback-service/internal/favorite/domain"
	review "github.com/tair/feedback-service/internal/review/domain"
)

// Models returns every migrated model. Referenced tables come first.
func Models() []any {
	return []any{
		&directory.User{},
		&directory.Product{},
		&favorite.Favorite{},
		&review.Review{},
	}
}

// Migrate creates or updates all tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
