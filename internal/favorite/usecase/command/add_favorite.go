package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/feedback-service/internal/favorite/domain"
)

// AddFavoriteCommand represents the command to favorite a product
type AddFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// AddFavoriteHandler handles add favorite command
type AddFavoriteHandler struct {
	repo   domain.FavoriteRepository
	events EventPublisher
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoriteRepository, events EventPublisher) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo, events: events}
}

// Handle executes the add favorite command. Adding a favorite the user
// already holds returns the existing row and created == false.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (favorite *domain.Favorite, created bool, err error) {
	if cmd.UserID == 0 {
		return nil, false, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if cmd.ProductID == 0 {
		return nil, false, fmt.Errorf("%w: product_id is required", domain.ErrInvalidInput)
	}

	existing, err := h.repo.FindByUserAndProduct(ctx, cmd.UserID, cmd.ProductID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrFavoriteNotFound) {
		return nil, false, fmt.Errorf("failed to check favorite: %w", err)
	}

	favorite = &domain.Favorite{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
	}
	if err := h.repo.Create(ctx, favorite); err != nil {
		return nil, false, fmt.Errorf("failed to add favorite: %w", err)
	}

	publish(ctx, h.events, domain.EventFavoriteAdded, favorite)
	return favorite, true, nil
}
