package command

import (
	"context"
	"fmt"

	"github.com/tair/feedback-service/internal/favorite/domain"
)

// RemoveFavoriteCommand represents the command to un-favorite a product
type RemoveFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// RemoveFavoriteHandler handles remove favorite command
type RemoveFavoriteHandler struct {
	repo   domain.FavoriteRepository
	events EventPublisher
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository, events EventPublisher) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo, events: events}
}

// Handle executes the remove favorite command
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if cmd.UserID == 0 || cmd.ProductID == 0 {
		return fmt.Errorf("%w: user_id and product_id are required", domain.ErrInvalidInput)
	}

	favorite, err := h.repo.FindByUserAndProduct(ctx, cmd.UserID, cmd.ProductID)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, favorite.ID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	publish(ctx, h.events, domain.EventFavoriteRemoved, favorite)
	return nil
}
