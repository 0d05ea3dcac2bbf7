package command

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/favorite/domain"
)

// PurgeFavoritesCommand removes every favorite of a user or of a product.
// Exactly one of UserID and ProductID must be set.
type PurgeFavoritesCommand struct {
	UserID    uint
	ProductID uint
}

// PurgeFavoritesHandler handles purge favorites command
type PurgeFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewPurgeFavoritesHandler creates a new purge favorites handler
func NewPurgeFavoritesHandler(repo domain.FavoriteRepository) *PurgeFavoritesHandler {
	return &PurgeFavoritesHandler{repo: repo}
}

// Handle executes the purge and returns the number of removed favorites
func (h *PurgeFavoritesHandler) Handle(ctx context.Context, cmd PurgeFavoritesCommand) (int64, error) {
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
