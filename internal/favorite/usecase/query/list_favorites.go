package query

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/favorite/domain"
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

// ListUserFavoritesQuery represents the query to list a user's favorites
type ListUserFavoritesQuery struct {
	UserID uint
	Limit  int
	Offset int
}

// ListUserFavoritesHandler handles list user favorites query
type ListUserFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListUserFavoritesHandler creates a new list user favorites handler
func NewListUserFavoritesHandler(repo domain.FavoriteRepository) *ListUserFavoritesHandler {
	return &ListUserFavoritesHandler{repo: repo}
}

// Handle executes the list user favorites query
func (h *ListUserFavoritesHandler) Handle(ctx context.Context, query ListUserFavoritesQuery) ([]domain.Favorite, error) {
	if query.UserID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidInput)
	}
	query.Limit = PageLimit(query.Limit)

	favorites, err := h.repo.FindByUser(ctx, query.UserID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// ListProductFavoritesQuery represents the query to list a product's favorites
type ListProductFavoritesQuery struct {
	ProductID uint
	Limit     int
	Offset    int
}

// ProductFavorites is a page of favorites plus the product's total
type ProductFavorites struct {
	Favorites []domain.Favorite `json:"favorites"`
	Total     int64             `json:"total"`
}

// ListProductFavoritesHandler handles list product favorites query
type ListProductFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListProductFavoritesHandler creates a new list product favorites handler
func NewListProductFavoritesHandler(repo domain.FavoriteRepository) *ListProductFavoritesHandler {
	return &ListProductFavoritesHandler{repo: repo}
}

// Handle executes the list product favorites query
func (h *ListProductFavoritesHandler) Handle(ctx context.Context, query ListProductFavoritesQuery) (*ProductFavorites, error) {
	if query.ProductID == 0 {
		return nil, fmt.Errorf("%w: invalid product id", domain.ErrInvalidInput)
	}
	query.Limit = PageLimit(query.Limit)

	favorites, err := h.repo.FindByProduct(ctx, query.ProductID, query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	total, err := h.repo.CountByProduct(ctx, query.ProductID)
	if err != nil {
		return nil, err
	}

	return &ProductFavorites{Favorites: favorites, Total: total}, nil
}
