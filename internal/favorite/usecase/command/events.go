package command

import (
	"context"

	"github.com/tair/feedback-service/internal/favorite/domain"
	"github.com/tair/feedback-service/pkg/logger"
)

// EventPublisher publishes favorite lifecycle events
type EventPublisher interface {
	PublishFavoriteEvent(ctx context.Context, eventType string, favorite *domain.Favorite) error
}

// publish sends an event after the write committed. A failed publish is
// logged and does not undo the write.
func publish(ctx context.Context, events EventPublisher, eventType string, favorite *domain.Favorite) {
	if events == nil {
		return
	}
	if err := events.PublishFavoriteEvent(ctx, eventType, favorite); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", eventType).
			Uint("favorite_id", favorite.ID).
			Msg("Failed to publish favorite event")
	}
}
