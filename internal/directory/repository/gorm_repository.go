package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/directory/domain"
)

// ErrNotFound is returned when a referenced user or product does not exist
var ErrNotFound = errors.New("record not found")

// GormDirectoryRepository implements DirectoryRepository using GORM
type GormDirectoryRepository struct {
	db *gorm.DB
}

// NewGormDirectoryRepository creates a new GORM directory repository
func NewGormDirectoryRepository(db *gorm.DB) *GormDirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

// AutoMigrate creates the users and products tables when missing
func (r *GormDirectoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{}, &domain.Product{})
}

func (r *GormDirectoryRepository) CreateUser(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GormDirectoryRepository) CreateProduct(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// SyncIDSequences advances the PostgreSQL serial sequences of users and
// products to the current max id. Other dialects need no adjustment.
func (r *GormDirectoryRepository) SyncIDSequences() error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"users", "products"} {
		if err := r.db.Exec(sequenceResetSQL(table)).Error; err != nil {
			return fmt.Errorf("failed to sync %s id sequence: %w", table, err)
		}
	}
	return nil
}

// sequenceResetSQL sets table's id sequence so the next nextval is max(id)+1
func sequenceResetSQL(table string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
		table,
	)
}

func (r *GormDirectoryRepository) FindUserByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *GormDirectoryRepository) FindProductByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}
