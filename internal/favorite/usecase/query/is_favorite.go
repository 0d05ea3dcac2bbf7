package query

import (
	"context"
	"errors"

	"github.com/tair/feedback-service/internal/favorite/domain"
)

// IsFavoriteQuery asks whether a user has favorited a product
type IsFavoriteQuery struct {
	UserID    uint
	ProductID uint
}

// IsFavoriteHandler handles is favorite query
type IsFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewIsFavoriteHandler creates a new is favorite handler
func NewIsFavoriteHandler(repo domain.FavoriteRepository) *IsFavoriteHandler {
	return &IsFavoriteHandler{repo: repo}
}

// Handle executes the is favorite query
func (h *IsFavoriteHandler) Handle(ctx context.Context, query IsFavoriteQuery) (bool, error) {
	_, err := h.repo.FindByUserAndProduct(ctx, query.UserID, query.ProductID)
	if errors.Is(err, domain.ErrFavoriteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
