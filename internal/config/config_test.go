package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	appConfig, err := Load()
	require.NoError(t, err)

	assert.False(t, appConfig.Debug)
	assert.Equal(t, 8000, appConfig.API.ListenPort)

	assert.Equal(t, "postgresql", appConfig.Postgres.Host)
	assert.Equal(t, 5432, appConfig.Postgres.Port)
	assert.Equal(t, "homelab", appConfig.Postgres.Database)
	assert.Equal(t, "postgres", appConfig.Postgres.User)
	assert.Equal(t, "postgres123", appConfig.Postgres.Password)

	assert.Equal(t, "redis", appConfig.Redis.Host)
	assert.Equal(t, 6379, appConfig.Redis.Port)

	assert.Equal(t, "rabbitmq", appConfig.RabbitMQ.Host)
	assert.Equal(t, 5672, appConfig.RabbitMQ.Port)
	assert.Equal(t, "/", appConfig.RabbitMQ.VHost)
	assert.Equal(t, "admin", appConfig.RabbitMQ.User)
	assert.Equal(t, "admin123", appConfig.RabbitMQ.Password)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HOMELAB_DEBUG", "true")
	t.Setenv("HOMELAB_LISTEN_PORT", "9000")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("RABBITMQ_PASSWORD", "changed")

	appConfig, err := Load()
	require.NoError(t, err)

	assert.True(t, appConfig.Debug)
	assert.Equal(t, 9000, appConfig.API.ListenPort)
	assert.Equal(t, "db.internal", appConfig.Postgres.Host)
	assert.Equal(t, 15432, appConfig.Postgres.Port)
	assert.Equal(t, "cache.internal", appConfig.Redis.Host)
	assert.Equal(t, "changed", appConfig.RabbitMQ.Password)

	// 덮어쓰지 않은 값은 기본값 유지
	assert.Equal(t, "homelab", appConfig.Postgres.Database)
}

func TestLoad_UnmappedEnvironmentVariablesIgnored(t *testing.T) {
	// 매핑 테이블에 없는 환경 변수는 설정에 영향을 주지 않아야 함
	t.Setenv("HOMELAB_UNKNOWN_KEY", "value")
	t.Setenv("POSTGRES_UNRELATED", "value")

	appConfig, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgresql", appConfig.Postgres.Host)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"포트 범위 초과", "HOMELAB_LISTEN_PORT", "70000"},
		{"포트 0", "HOMELAB_LISTEN_PORT", "0"},
		{"음수 포트", "POSTGRES_PORT", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		Database: "homelab",
		User:     "postgres",
		Password: "secret",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=postgres password=secret dbname=homelab sslmode=disable",
		cfg.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	t.Parallel()

	cfg := RedisConfig{Host: "cache.internal", Port: 6379}

	assert.Equal(t, "cache.internal:6379", cfg.Addr())
}
