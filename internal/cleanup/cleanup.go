// Package cleanup removes the feedback of users and products deleted
// upstream, driven by their Kafka events.
package cleanup

import (
	"context"
	"fmt"

	favoritecommand "github.com/tair/feedback-service/internal/favorite/usecase/command"
	reviewcommand "github.com/tair/feedback-service/internal/review/usecase/command"
	"github.com/tair/feedback-service/kafka"
	"github.com/tair/feedback-service/pkg/logger"
)

// Purger deletes favorites and reviews owned by a removed user or product
type Purger struct {
	favorites *favoritecommand.PurgeFavoritesHandler
	reviews   *reviewcommand.PurgeReviewsHandler
}

// NewPurger creates a new purger
func NewPurger(favorites *favoritecommand.PurgeFavoritesHandler, reviews *reviewcommand.PurgeReviewsHandler) *Purger {
	return &Purger{favorites: favorites, reviews: reviews}
}

// Register subscribes the purger to deletion events on c
func (p *Purger) Register(c *kafka.Consumer) {
	c.RegisterHandler(kafka.EventTypeUserDeleted, p.OnUserDeleted)
	c.RegisterHandler(kafka.EventTypeProductDeleted, p.OnProductDeleted)
}

// OnUserDeleted purges everything the user wrote or favorited
func (p *Purger) OnUserDeleted(ctx context.Context, event kafka.EntityDeletedEvent) error {
	if event.UserID == 0 {
		return fmt.Errorf("%s event without user_id", event.EventType)
	}
	favorites, err := p.favorites.Handle(ctx, favoritecommand.PurgeFavoritesCommand{UserID: event.UserID})
	if err != nil {
		return fmt.Errorf("failed to purge favorites of user %d: %w", event.UserID, err)
	}
	reviews, err := p.reviews.Handle(ctx, reviewcommand.PurgeReviewsCommand{UserID: event.UserID})
	if err != nil {
		return fmt.Errorf("failed to purge reviews of user %d: %w", event.UserID, err)
	}

	logger.Info(ctx).
		Uint("user_id", event.UserID).
		Int64("favorites", favorites).
		Int64("reviews", reviews).
		Msg("Purged feedback of deleted user")
	return nil
}

// OnProductDeleted purges every favorite and review of the product
func (p *Purger) OnProductDeleted(ctx context.Context, event kafka.EntityDeletedEvent) error {
	if event.ProductID == 0 {
		return fmt.Errorf("%s event without product_id", event.EventType)
	}
	favorites, err := p.favorites.Handle(ctx, favoritecommand.PurgeFavoritesCommand{ProductID: event.ProductID})
	if err != nil {
		return fmt.Errorf("failed to purge favorites of product %d: %w", event.ProductID, err)
	}
	reviews, err := p.reviews.Handle(ctx, reviewcommand.PurgeReviewsCommand{ProductID: event.ProductID})
	if err != nil {
		return fmt.Errorf("failed to purge reviews of product %d: %w", event.ProductID, err)
	}

	logger.Info(ctx).
		Uint("product_id", event.ProductID).
		Int64("favorites", favorites).
		Int64("reviews", reviews).
		Msg("Purged feedback of deleted product")
	return nil
}
