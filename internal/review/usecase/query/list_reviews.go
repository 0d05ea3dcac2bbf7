package query

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/review/domain"
)

// Page sizes. Requests above MaxLimit are capped.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// PageLimit returns limit bounded to 1..MaxLimit, DefaultLimit when unset
func PageLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// ListProductReviewsQuery represents the query to list a product's reviews
type ListProductReviewsQuery struct {
	ProductID uint
	Limit     int
	Offset    int
}

// ProductReviews is a page of reviews plus the product's total
type ProductReviews struct {
	Reviews []domain.ReviewView `json:"reviews"`
	Total   int64               `json:"total"`
}

// ListProductReviewsHandler handles list product reviews query
type ListProductReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListProductReviewsHandler creates a new list product reviews handler
func NewListProductReviewsHandler(repo domain.ReviewRepository) *ListProductReviewsHandler {
	return &ListProductReviewsHandler{repo: repo}
}

// Handle executes the list product reviews query
func (h *ListProductReviewsHandler) Handle(ctx context.Context, query ListProductReviewsQuery) (*ProductReviews, error) {
	if query.ProductID == 0 {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrInvalidInput)
	}
	query.Limit = PageLimit(query.Limit)

	reviews, err := h.repo.FindViewsByProduct(ctx, query.ProductID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	total, err := h.repo.CountByProduct(ctx, query.ProductID)
	if err != nil {
		return nil, err
	}

	return &ProductReviews{Reviews: reviews, Total: total}, nil
}

// ListUserReviewsQuery represents the query to list a user's reviews
type ListUserReviewsQuery struct {
	UserID uint
	Limit  int
	Offset int
}

// ListUserReviewsHandler handles list user reviews query
type ListUserReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListUserReviewsHandler creates a new list user reviews handler
func NewListUserReviewsHandler(repo domain.ReviewRepository) *ListUserReviewsHandler {
	return &ListUserReviewsHandler{repo: repo}
}

// Handle executes the list user reviews query
func (h *ListUserReviewsHandler) Handle(ctx context.Context, query ListUserReviewsQuery) ([]domain.ReviewView, error) {
	if query.UserID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidInput)
	}
	query.Limit = PageLimit(query.Limit)

	reviews, err := h.repo.FindViewsByUser(ctx, query.UserID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
