package command

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/review/domain"
)

// UpdateReviewCommand represents the command to edit a review.
// Nil fields are left unchanged.
type UpdateReviewCommand struct {
	ID      uint
	ActorID uint
	Body    *string
	Rating  *int
}

// UpdateReviewHandler handles review update command
type UpdateReviewHandler struct {
	repo   domain.ReviewRepository
	events EventPublisher
}

// NewUpdateReviewHandler creates a new update review handler
func NewUpdateReviewHandler(repo domain.ReviewRepository, events EventPublisher) *UpdateReviewHandler {
	return &UpdateReviewHandler{repo: repo, events: events}
}

// Handle executes the update review command. Every successful call moves
// updated_at forward, even when the values are unchanged.
func (h *UpdateReviewHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) (*domain.ReviewView, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("%w: invalid review id", domain.ErrInvalidInput)
	}

	review, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if review.UserID != cmd.ActorID {
		return nil, domain.ErrNotAuthor
	}

	if cmd.Body != nil {
		body, err := domain.NormalizeBody(*cmd.Body)
		if err != nil {
			return nil, err
		}
		review.Body = body
	}
	if cmd.Rating != nil {
		if err := domain.ValidateRating(*cmd.Rating); err != nil {
			return nil, err
		}
		review.Rating = *cmd.Rating
	}

	if err := h.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	publish(ctx, h.events, domain.EventReviewUpdated, review)

	view, err := h.repo.FindViewByID(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return view, nil
}
