package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	directory "github.com/tair/feedback-service/internal/directory/domain"
)

// Rating bounds accepted by the command layer
const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrUnknownReference = errors.New("review references unknown user or product")
	// ErrAuthorNotFound is returned when a review's user row cannot be joined
	ErrAuthorNotFound = errors.New("review author not found")
	ErrNotAuthor      = errors.New("only the author can modify a review")
	ErrInvalidRating  = fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	ErrEmptyBody      = errors.New("review body is required")
	// ErrInvalidInput marks a malformed request such as a zero id
	ErrInvalidInput = errors.New("invalid input")
)

// Review is a user's rated critique of a product
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;autoUpdateTime"`

	// Schema only: these declare the foreign keys and are never loaded.
	User    *directory.User    `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Product *directory.Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// View pairs the review with its author's username
func (r *Review) View(username string) ReviewView {
	return ReviewView{
		ID:        r.ID,
		UserID:    r.UserID,
		Username:  username,
		ProductID: r.ProductID,
		Body:      r.Body,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ReviewView is the read model of a review joined with its author
type ReviewView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	ProductID uint      `json:"product_id"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToMap projects the view into a plain mapping
func (v ReviewView) ToMap() map[string]any {
	return map[string]any{
		"id":         v.ID,
		"user_id":    v.UserID,
		"username":   v.Username,
		"product_id": v.ProductID,
		"body":       v.Body,
		"rating":     v.Rating,
		"created_at": v.CreatedAt,
		"updated_at": v.UpdatedAt,
	}
}

// RatingSummary aggregates the reviews of one product
type RatingSummary struct {
	ProductID     uint    `json:"product_id"`
	AverageRating float64 `json:"average_rating"`
	TotalCount    int64   `json:"total_count"`
}

// ValidateRating checks rating against MinRating and MaxRating
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// NormalizeBody trims surrounding whitespace and rejects blank bodies
func NormalizeBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ErrEmptyBody
	}
	return body, nil
}

// ReviewRepository defines the contract for review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	// Update persists body and rating and refreshes UpdatedAt, which always
	// moves forward from the value held by review.
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
	DeleteByProduct(ctx context.Context, productID uint) (int64, error)

	FindViewByID(ctx context.Context, id uint) (*ReviewView, error)
	FindViewsByProduct(ctx context.Context, productID uint, limit, offset int) ([]ReviewView, error)
	FindViewsByUser(ctx context.Context, userID uint, limit, offset int) ([]ReviewView, error)
	CountByProduct(ctx context.Context, productID uint) (int64, error)
	SummarizeByProduct(ctx context.Context, productID uint) (*RatingSummary, error)
}

// Review lifecycle event types
const (
	EventReviewCreated = "review.created"
	EventReviewUpdated = "review.updated"
	EventReviewDeleted = "review.deleted"
)
