package domain

import (
	"context"
	"errors"
	"time"

	directory "github.com/tair/feedback-service/internal/directory/domain"
)

var (
	// ErrFavoriteNotFound is returned when no favorite matches the lookup
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrUnknownReference is returned when the user or product does not exist
	ErrUnknownReference = errors.New("favorite references unknown user or product")
	// ErrInvalidInput marks a malformed request such as a zero id
	ErrInvalidInput = errors.New("invalid input")
)

// Favorite records that a user marked a product as favorite
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Schema only: these declare the foreign keys and are never loaded.
	User    *directory.User    `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Product *directory.Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ToMap projects the stored fields into a plain mapping
func (f *Favorite) ToMap() map[string]any {
	return map[string]any{
		"id":         f.ID,
		"product_id": f.ProductID,
		"user_id":    f.UserID,
		"created_at": f.CreatedAt,
	}
}

// FavoriteRepository defines the contract for favorite data access
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *Favorite) error
	FindByID(ctx context.Context, id uint) (*Favorite, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (*Favorite, error)
	FindByUser(ctx context.Context, userID uint, limit, offset int) ([]Favorite, error)
	FindByProduct(ctx context.Context, productID uint, limit, offset int) ([]Favorite, error)
	CountByProduct(ctx context.Context, productID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
	DeleteByProduct(ctx context.Context, productID uint) (int64, error)
}

// Favorite lifecycle event types
const (
	EventFavoriteAdded   = "favorite.added"
	EventFavoriteRemoved = "favorite.removed"
)
