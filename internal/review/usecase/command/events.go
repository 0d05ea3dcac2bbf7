package command

import (
	"context"

	"github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/pkg/logger"
)

// EventPublisher publishes review lifecycle events
type EventPublisher interface {
	PublishReviewEvent(ctx context.Context, eventType string, review *domain.Review) error
}

func publish(ctx context.Context, events EventPublisher, eventType string, review *domain.Review) {
	if events == nil {
		return
	}
	if err := events.PublishReviewEvent(ctx, eventType, review); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", eventType).
			Uint("review_id", review.ID).
			Msg("Failed to publish review event")
	}
}
