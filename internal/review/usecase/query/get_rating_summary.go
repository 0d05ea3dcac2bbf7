package query

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/review/domain"
)

// GetRatingSummaryQuery represents the query to summarize a product's ratings
type GetRatingSummaryQuery struct {
	ProductID uint
}

// GetRatingSummaryHandler handles get rating summary query
type GetRatingSummaryHandler struct {
	repo domain.ReviewRepository
}

// NewGetRatingSummaryHandler creates a new get rating summary handler
func NewGetRatingSummaryHandler(repo domain.ReviewRepository) *GetRatingSummaryHandler {
	return &GetRatingSummaryHandler{repo: repo}
}

// Handle executes the get rating summary query
func (h *GetRatingSummaryHandler) Handle(ctx context.Context, query GetRatingSummaryQuery) (*domain.RatingSummary, error) {
	if query.ProductID == 0 {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrInvalidInput)
	}

	summary, err := h.repo.SummarizeByProduct(ctx, query.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating summary: %w", err)
	}
	return summary, nil
}
