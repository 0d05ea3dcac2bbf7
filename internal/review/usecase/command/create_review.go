package command

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/review/domain"
)

// CreateReviewCommand represents the command to review a product
type CreateReviewCommand struct {
	UserID    uint
	ProductID uint
	Body      string
	Rating    int
}

// CreateReviewHandler handles review creation command
type CreateReviewHandler struct {
	repo   domain.ReviewRepository
	events EventPublisher
}

// NewCreateReviewHandler creates a new create review handler
func NewCreateReviewHandler(repo domain.ReviewRepository, events EventPublisher) *CreateReviewHandler {
	return &CreateReviewHandler{repo: repo, events: events}
}

// Handle executes the create review command and returns the joined view
func (h *CreateReviewHandler) Handle(ctx context.Context, cmd CreateReviewCommand) (*domain.ReviewView, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrInvalidInput)
	}
	body, err := domain.NormalizeBody(cmd.Body)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateRating(cmd.Rating); err != nil {
		return nil, err
	}

	// Timestamps are left zero so both are stamped from one clock reading.
	review := &domain.Review{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Body:      body,
		Rating:    cmd.Rating,
	}
	if err := h.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	publish(ctx, h.events, domain.EventReviewCreated, review)

	view, err := h.repo.FindViewByID(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load review: %w", err)
	}
	return view, nil
}
