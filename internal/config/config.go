// Package config loads service settings from defaults, an optional config
// file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/tair/feedback-service/pkg/database"
	"github.com/tair/feedback-service/pkg/tracing"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the feedback service settings
type Config struct {
	Environment string
	LogLevel    string
	ServiceName string

	HTTPPort string
	GRPCPort string

	Driver     string
	SQLitePath string
	Database   database.Config

	JaegerEndpoint string
	Kafka          KafkaConfig
}

// KafkaConfig holds event bus settings
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	GroupID string
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

// envBinding maps a config key onto its environment variable
type envBinding struct {
	ConfigKey string
	EnvVar    string
	Validate  func(string) error
}

func envBindings() []envBinding {
	return []envBinding{
		{"environment", "ENVIRONMENT", nil},
		{"log.level", "LOG_LEVEL", nil},
		{"service.name", "OTEL_SERVICE_NAME", nil},
		{"http.port", "HTTP_PORT", validatePort},
		{"grpc.port", "GRPC_PORT", validatePort},
		{"db.driver", "DB_DRIVER", validateDriver},
		{"db.sqlite_path", "SQLITE_PATH", nil},
		{"db.host", "DB_HOST", nil},
		{"db.port", "DB_PORT", validatePort},
		{"db.user", "DB_USER", nil},
		{"db.password", "DB_PASSWORD", nil},
		{"db.name", "DB_NAME", nil},
		{"db.sslmode", "DB_SSLMODE", nil},
		{"db.schema", "DB_SCHEMA", nil},
		{"tracing.jaeger_endpoint", "JAEGER_ENDPOINT", nil},
		{"kafka.enabled", "KAFKA_ENABLED", validateBool},
		{"kafka.brokers", "KAFKA_BROKERS", nil},
		{"kafka.group_id", "KAFKA_GROUP_ID", nil},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("service.name", "feedback-service")
	v.SetDefault("http.port", "8080")
	v.SetDefault("grpc.port", "9090")
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.sqlite_path", "feedback.db")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "feedbackdb")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.schema", "")
	v.SetDefault("tracing.jaeger_endpoint", tracing.DefaultJaegerEndpoint)
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.group_id", "feedback-service")
}

// Load reads configuration into a new Config. configFile may be empty.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: v.GetString("environment"),
		LogLevel:    v.GetString("log.level"),
		ServiceName: v.GetString("service.name"),
		HTTPPort:    v.GetString("http.port"),
		GRPCPort:    v.GetString("grpc.port"),
		Driver:      strings.ToLower(v.GetString("db.driver")),
		SQLitePath:  v.GetString("db.sqlite_path"),
		Database: database.Config{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
			Schema:   v.GetString("db.schema"),
		},
		JaegerEndpoint: v.GetString("tracing.jaeger_endpoint"),
		Kafka: KafkaConfig{
			Enabled: v.GetBool("kafka.enabled"),
			Brokers: splitList(v.GetString("kafka.brokers")),
			GroupID: v.GetString("kafka.group_id"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	var errs []error
	if err := validateDriver(c.Driver); err != nil {
		errs = append(errs, err)
	}
	if c.Driver == DriverPostgres && c.Database.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required for postgres"))
	}
	if c.Driver == DriverSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH is required for sqlite"))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when Kafka is enabled"))
	}
	return errors.Join(errs...)
}

func bindEnv(v *viper.Viper) error {
	var warnings []string
	for _, binding := range envBindings() {
		if err := v.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to bind %s: %v", binding.EnvVar, err))
			continue
		}
		if binding.Validate == nil {
			continue
		}
		if value := v.GetString(binding.ConfigKey); value != "" {
			if err := binding.Validate(value); err != nil {
				warnings = append(warnings, fmt.Sprintf("invalid %s value %q: %v", binding.EnvVar, value, err))
			}
		}
	}

	if len(warnings) > 0 {
		return fmt.Errorf("configuration issues:\n  - %s", strings.Join(warnings, "\n  - "))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validatePort(value string) error {
	port, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("must be between 1 and 65535")
	}
	return nil
}

func validateBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("must be true or false")
	}
	return nil
}

func validateDriver(value string) error {
	switch strings.ToLower(value) {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", value)
	}
}
