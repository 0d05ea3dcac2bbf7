package domain

import "time"

// User is the slice of the user service's row this service reads.
// Favorites and reviews reference it by id; usernames are joined in on read.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is the slice of the product service's row this service reads
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// DirectoryRepository reads and seeds the referenced user and product rows.
// The owning services normally write these tables.
type DirectoryRepository interface {
	CreateUser(user *User) error
	CreateProduct(product *Product) error
	FindUserByID(id uint) (*User, error)
	FindProductByID(id uint) (*Product, error)
	// SyncIDSequences moves id sequences past rows inserted with explicit ids
	SyncIDSequences() error
}
