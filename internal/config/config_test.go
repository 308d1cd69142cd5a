package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_FromConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	writeFile(t, path, `
service:
  name: merchant-gateway
  environment: test
database:
  host: db.internal
  name: gateway
  user: gateway
  conn_max_lifetime: 2m
server:
  http:
    port: 18080
auth:
  admin_jwt_secret: secret
events:
  driver: redis
  redis:
    addr: redis:6379
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Service.Environment)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 2*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 18080, cfg.Server.HTTP.Port)
	assert.Equal(t, 9090, cfg.Server.GRPC.Port)
	assert.Equal(t, "secret", cfg.Auth.AdminJWTSecret)
	assert.Equal(t, EventsDriverRedis, cfg.Events.Driver)
	assert.Equal(t, "redis:6379", cfg.Events.Redis.Addr)
	assert.Equal(t, DefaultEventsChannel, cfg.Events.Channel)
	assert.Equal(t, "host=db.internal port=5432 user=gateway password= dbname=gateway sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		events  EventsConfig
		wantErr bool
	}{
		{name: "none", events: EventsConfig{Driver: EventsDriverNone}},
		{name: "redis", events: EventsConfig{Driver: EventsDriverRedis}},
		{name: "sqs without queue", events: EventsConfig{Driver: EventsDriverSQS}, wantErr: true},
		{name: "sqs with queue", events: EventsConfig{Driver: EventsDriverSQS, SQS: SQSConfig{QueueURL: "https://sqs/queue"}}},
		{name: "unknown", events: EventsConfig{Driver: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Events: tt.events}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	cfg := DatabaseConfig{Driver: "sqlite", Name: "file::memory:"}
	assert.Equal(t, "file::memory:", cfg.DSN())
}
