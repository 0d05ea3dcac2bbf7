package query

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/review/domain"
)

// GetReviewQuery represents the query to get a review by ID
type GetReviewQuery struct {
	ID uint
}

// GetReviewHandler handles get review query
type GetReviewHandler struct {
	repo domain.ReviewRepository
}

// NewGetReviewHandler creates a new get review handler
func NewGetReviewHandler(repo domain.ReviewRepository) *GetReviewHandler {
	return &GetReviewHandler{repo: repo}
}

// Handle executes the get review query
func (h *GetReviewHandler) Handle(ctx context.Context, query GetReviewQuery) (*domain.ReviewView, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("%w: invalid review id", domain.ErrInvalidInput)
	}
	return h.repo.FindViewByID(ctx, query.ID)
}
