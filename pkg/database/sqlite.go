package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteConnection opens a SQLite database file with foreign keys enforced.
// Used for local development and tests.
func NewSQLiteConnection(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=ON", path)
	db, err := Open(sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	// Writers serialize on SQLite anyway.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
