package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/favorite/domain"
	"github.com/tair/feedback-service/pkg/database"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Create inserts a new favorite
func (r *GormFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if database.IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %d, product %d", domain.ErrUnknownReference, favorite.UserID, favorite.ProductID)
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// FindByID retrieves a favorite by ID
func (r *GormFavoriteRepository) FindByID(ctx context.Context, id uint) (*domain.Favorite, error) {
	var favorite domain.Favorite
	if err := r.db.WithContext(ctx).First(&favorite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &favorite, nil
}

// FindByUserAndProduct returns the oldest favorite a user holds for a product
func (r *GormFavoriteRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Order("id ASC").
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &favorite, nil
}

// FindByUser lists a user's favorites, newest first
func (r *GormFavoriteRepository) FindByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	query := paginate(r.db.WithContext(ctx).Where("user_id = ?", userID), limit, offset)
	if err := query.Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorites by user: %w", err)
	}
	return favorites, nil
}

// FindByProduct lists a product's favorites, newest first
func (r *GormFavoriteRepository) FindByProduct(ctx context.Context, productID uint, limit, offset int) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	query := paginate(r.db.WithContext(ctx).Where("product_id = ?", productID), limit, offset)
	if err := query.Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorites by product: %w", err)
	}
	return favorites, nil
}

// CountByProduct returns how many favorites a product has
func (r *GormFavoriteRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).Where("product_id = ?", productID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// Delete removes a favorite
func (r *GormFavoriteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Favorite{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

// DeleteByUser removes every favorite of a user
func (r *GormFavoriteRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Favorite{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete favorites by user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByProduct removes every favorite of a product
func (r *GormFavoriteRepository) DeleteByProduct(ctx context.Context, productID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&domain.Favorite{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete favorites by product: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	query = query.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
