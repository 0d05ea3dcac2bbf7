package query

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/favorite/domain"
)

// GetFavoriteQuery represents the query to get a favorite by ID
type GetFavoriteQuery struct {
	ID uint
}

// GetFavoriteHandler handles get favorite query
type GetFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewGetFavoriteHandler creates a new get favorite handler
func NewGetFavoriteHandler(repo domain.FavoriteRepository) *GetFavoriteHandler {
	return &GetFavoriteHandler{repo: repo}
}

// Handle executes the get favorite query
func (h *GetFavoriteHandler) Handle(ctx context.Context, query GetFavoriteQuery) (*domain.Favorite, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("%w: invalid favorite id", domain.ErrInvalidInput)
	}
	return h.repo.FindByID(ctx, query.ID)
}
