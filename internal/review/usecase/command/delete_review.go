package command

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/review/domain"
)

// DeleteReviewCommand represents the command to delete a review
type DeleteReviewCommand struct {
	ID      uint
	ActorID uint
}

// DeleteReviewHandler handles review deletion command
type DeleteReviewHandler struct {
	repo   domain.ReviewRepository
	events EventPublisher
}

// NewDeleteReviewHandler creates a new delete review handler
func NewDeleteReviewHandler(repo domain.ReviewRepository, events EventPublisher) *DeleteReviewHandler {
	return &DeleteReviewHandler{repo: repo, events: events}
}

// Handle executes the delete review command
func (h *DeleteReviewHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: invalid review id", domain.ErrInvalidInput)
	}

	review, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if review.UserID != cmd.ActorID {
		return domain.ErrNotAuthor
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return err
	}

	publish(ctx, h.events, domain.EventReviewDeleted, review)
	return nil
}
