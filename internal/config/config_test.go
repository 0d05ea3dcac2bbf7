package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "feedbackdb", cfg.Database.DBName)
	assert.Equal(t, "feedback-service", cfg.ServiceName)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_SCHEMA", "marketplace")
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "marketplace", cfg.Database.Schema)
	assert.Equal(t, "8181", cfg.HTTPPort)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_ConfigFileUnderEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: "7000"
db:
  driver: sqlite
  sqlite_path: /tmp/feedback.db
`), 0o600))
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.HTTPPort, "environment wins over the file")
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, "/tmp/feedback.db", cfg.SQLitePath)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "eighty"}},
		{"port out of range", map[string]string{"GRPC_PORT": "70000"}},
		{"bad driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"bad bool", map[string]string{"KAFKA_ENABLED": "maybe"}},
		{"kafka without brokers", map[string]string{"KAFKA_ENABLED": "true", "KAFKA_BROKERS": " , "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(viper.New(), "")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
