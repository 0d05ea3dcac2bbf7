package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/pkg/database"
)

// viewColumns selects a review joined with its author's username
const viewColumns = "reviews.id, reviews.user_id, users.username, reviews.product_id, " +
	"reviews.body, reviews.rating, reviews.created_at, reviews.updated_at"

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a new review. Both timestamps come from the same clock reading.
func (r *GormReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %d, product %d", domain.ErrUnknownReference, review.UserID, review.ProductID)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// FindByID retrieves a review by ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return &review, nil
}

// Update writes body and rating. updated_at is stamped by GORM and never
// repeats or goes back from the value review carried in.
func (r *GormReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	prev := review.UpdatedAt
	now := r.db.NowFunc
	session := r.db.WithContext(ctx).Session(&gorm.Session{
		NowFunc: func() time.Time { return nextTimestamp(now(), prev) },
	})

	result := session.Model(review).Select("body", "rating").Updates(review)
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// Delete removes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// DeleteByUser removes every review written by a user
func (r *GormReviewRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Review{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete reviews by user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByProduct removes every review of a product
func (r *GormReviewRepository) DeleteByProduct(ctx context.Context, productID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&domain.Review{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete reviews by product: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// reviewRow is the scan target of the review/user join. Username is nil when
// the author row is missing.
type reviewRow struct {
	ID        uint
	UserID    uint
	Username  *string
	ProductID uint
	Body      string
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (row reviewRow) view() (domain.ReviewView, error) {
	if row.Username == nil {
		return domain.ReviewView{}, fmt.Errorf("%w: review %d, user %d", domain.ErrAuthorNotFound, row.ID, row.UserID)
	}
	return domain.ReviewView{
		ID:        row.ID,
		UserID:    row.UserID,
		Username:  *row.Username,
		ProductID: row.ProductID,
		Body:      row.Body,
		Rating:    row.Rating,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *GormReviewRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews").
		Select(viewColumns).
		Joins("LEFT JOIN users ON users.id = reviews.user_id")
}

// FindViewByID retrieves a review joined with its author
func (r *GormReviewRepository) FindViewByID(ctx context.Context, id uint) (*domain.ReviewView, error) {
	var rows []reviewRow
	if err := r.views(ctx).Where("reviews.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrReviewNotFound
	}

	view, err := rows[0].view()
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// FindViewsByProduct lists a product's reviews with authors, newest first
func (r *GormReviewRepository) FindViewsByProduct(ctx context.Context, productID uint, limit, offset int) ([]domain.ReviewView, error) {
	return r.findViews(ctx, r.views(ctx).Where("reviews.product_id = ?", productID), limit, offset)
}

// FindViewsByUser lists a user's reviews with authors, newest first
func (r *GormReviewRepository) FindViewsByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.ReviewView, error) {
	return r.findViews(ctx, r.views(ctx).Where("reviews.user_id = ?", userID), limit, offset)
}

func (r *GormReviewRepository) findViews(_ context.Context, query *gorm.DB, limit, offset int) ([]domain.ReviewView, error) {
	query = query.Order("reviews.created_at DESC").Order("reviews.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []reviewRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	views := make([]domain.ReviewView, 0, len(rows))
	for _, row := range rows {
		view, err := row.view()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// CountByProduct returns how many reviews a product has
func (r *GormReviewRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).Where("product_id = ?", productID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

// SummarizeByProduct returns the review count and average rating of a product
func (r *GormReviewRepository) SummarizeByProduct(ctx context.Context, productID uint) (*domain.RatingSummary, error) {
	var agg struct {
		TotalCount    int64
		AverageRating float64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COUNT(*) AS total_count, COALESCE(AVG(rating), 0) AS average_rating").
		Where("product_id = ?", productID).
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reviews: %w", err)
	}

	return &domain.RatingSummary{
		ProductID:     productID,
		AverageRating: agg.AverageRating,
		TotalCount:    agg.TotalCount,
	}, nil
}

// nextTimestamp returns now, or the smallest storable instant after prev when
// the clock has not moved past it
func nextTimestamp(now, prev time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}
