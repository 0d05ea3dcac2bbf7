// Package testutil builds seeded SQLite databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	directory "github.com/tair/feedback-service/internal/directory/domain"
	"github.com/tair/feedback-service/internal/schema"
	"github.com/tair/feedback-service/pkg/database"
)

// Fixture ids seeded by NewDB
const (
	AliceID  uint = 1
	BobID    uint = 2
	LampID   uint = 10
	KettleID uint = 11
)

// NewDB returns a migrated SQLite database with foreign keys enforced and
// two users (alice, bob) and two products (lamp, kettle)
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))

	require.NoError(t, db.Create(&[]directory.User{
		{ID: AliceID, Username: "alice"},
		{ID: BobID, Username: "bob"},
	}).Error)
	require.NoError(t, db.Create(&[]directory.Product{
		{ID: LampID, Name: "Desk Lamp"},
		{ID: KettleID, Name: "Kettle"},
	}).Error)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
