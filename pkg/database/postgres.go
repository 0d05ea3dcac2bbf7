package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/feedback-service/pkg/logger"
)

// Config holds database configuration
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Schema is the PostgreSQL schema every table lives in. Empty means the
	// server default (public).
	Schema string
}

// DSN builds the lib/pq connection string for cfg
func (cfg Config) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, quoteValue(cfg.Password), cfg.DBName, cfg.SSLMode,
	)
	if cfg.Schema != "" {
		dsn += " search_path=" + cfg.Schema
	}
	return dsn
}

// URL returns a redacted URL form of cfg suitable for logs
func (cfg Config) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, "xxxxx"),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   cfg.DBName,
	}
	return u.Redacted()
}

// quoteValue quotes a keyword/value parameter when it contains spaces or quotes
func quoteValue(v string) string {
	needs := v == ""
	for _, r := range v {
		if r == ' ' || r == '\'' || r == '\\' {
			needs = true
			break
		}
	}
	if !needs {
		return v
	}
	out := []rune{'\''}
	for _, r := range v {
		if r == '\'' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(append(out, '\''))
}

// NewPostgresConnection creates a new PostgreSQL connection
func NewPostgresConnection(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Schema != "" {
		if _, err := db.Exec(`CREATE SCHEMA IF NOT EXISTS ` + quoteIdent(cfg.Schema)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema %q: %w", cfg.Schema, err)
		}
	}

	logger.Logger.Info().
		Str("database", cfg.URL()).
		Str("schema", cfg.Schema).
		Msg("Successfully connected to PostgreSQL database")
	return db, nil
}

// NewGormConnection opens a lib/pq pool and hands it to GORM
func NewGormConnection(cfg Config) (*gorm.DB, error) {
	sqlDB, err := NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}))
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Open opens a GORM session with the settings every repository relies on
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NowFunc:        Now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}
	return db, nil
}

// Now is the storage clock. PostgreSQL keeps microseconds, so values are
// truncated to match what a round trip returns.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func quoteIdent(s string) string {
	out := []rune{'"'}
	for _, r := range s {
		if r == '"' {
			out = append(out, '"')
		}
		out = append(out, r)
	}
	return string(append(out, '"'))
}
