package command

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/review/domain"
)

// PurgeReviewsCommand removes every review of a user or of a product.
// Exactly one of UserID and ProductID must be set.
type PurgeReviewsCommand struct {
	UserID    uint
	ProductID uint
}

// PurgeReviewsHandler handles purge reviews command
type PurgeReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewPurgeReviewsHandler creates a new purge reviews handler
func NewPurgeReviewsHandler(repo domain.ReviewRepository) *PurgeReviewsHandler {
	return &PurgeReviewsHandler{repo: repo}
}

// Handle executes the purge and returns the number of removed reviews
func (h *PurgeReviewsHandler) Handle(ctx context.Context, cmd PurgeReviewsCommand) (int64, error) {
	switch {
	case cmd.UserID != 0 && cmd.ProductID != 0:
		return 0, fmt.Errorf("%w: purge by user or by product, not both", domain.ErrInvalidInput)
	case cmd.UserID != 0:
		return h.repo.DeleteByUser(ctx, cmd.UserID)
	case cmd.ProductID != 0:
		return h.repo.DeleteByProduct(ctx, cmd.ProductID)
	default:
		return 0, fmt.Errorf("%w: user_id or product_id is required", domain.ErrInvalidInput)
	}
}
