package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "feedback",
		Password: "s3cret",
		DBName:   "feedbackdb",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=feedback password=s3cret dbname=feedbackdb sslmode=disable", cfg.DSN())

	cfg.Schema = "marketplace"
	assert.Contains(t, cfg.DSN(), " search_path=marketplace")

	cfg.Password = "it's here"
	assert.Contains(t, cfg.DSN(), `password='it\'s here'`)
}

func TestConfigURL_HidesPassword(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "feedback", Password: "s3cret", DBName: "feedbackdb"}
	assert.NotContains(t, cfg.URL(), "s3cret")
	assert.Contains(t, cfg.URL(), "db:5432/feedbackdb")
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated), true},
		{"lib/pq", &pq.Error{Code: "23503"}, true},
		{"lib/pq unique", &pq.Error{Code: "23505"}, false},
		{"sqlite message", errors.New("FOREIGN KEY constraint failed"), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForeignKeyViolation(tt.err))
		})
	}
}

type parentRow struct {
	ID uint `gorm:"primaryKey"`
}

type childRow struct {
	ID       uint       `gorm:"primaryKey"`
	ParentID uint       `gorm:"not null"`
	Parent   *parentRow `gorm:"constraint:OnDelete:CASCADE"`
}

func TestNewSQLiteConnection_EnforcesForeignKeys(t *testing.T) {
	db, err := NewSQLiteConnection(filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&parentRow{}, &childRow{}))

	err = db.Create(&childRow{ParentID: 42}).Error
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	parent := parentRow{}
	require.NoError(t, db.Create(&parent).Error)
	require.NoError(t, db.Create(&childRow{ParentID: parent.ID}).Error)

	require.NoError(t, db.Delete(&parentRow{}, parent.ID).Error)
	var count int64
	require.NoError(t, db.Model(&childRow{}).Count(&count).Error)
	assert.Zero(t, count, "children follow their parent on delete")
}

func TestIsNotFound(t *testing.T) {
	db, err := NewSQLiteConnection(filepath.Join(t.TempDir(), "nf.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&parentRow{}))

	var row parentRow
	assert.True(t, IsNotFound(db.First(&row, 99).Error))
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestNow_MicrosecondPrecision(t *testing.T) {
	now := Now()
	assert.Equal(t, now, now.Truncate(time.Microsecond))
	assert.Equal(t, time.UTC, now.Location())
}
