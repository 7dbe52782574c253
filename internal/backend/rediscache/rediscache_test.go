package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/homelab-api-server/internal/config"
	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
)

func TestEntryTTL(t *testing.T) {
	t.Parallel()

	// 캐시 항목은 1시간 후 만료되어야 함
	assert.Equal(t, time.Hour, EntryTTL)
}

func TestConnector_Unavailable(t *testing.T) {
	t.Parallel()

	// 존재하지 않는 백엔드 주소로 접속을 시도하면 Unavailable 에러가 반환되어야 함
	c := NewConnector(config.RedisConfig{Host: "127.0.0.1", Port: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	t.Run("Probe", func(t *testing.T) {
		err := c.Probe(ctx)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})

	t.Run("Get", func(t *testing.T) {
		_, err := c.Get(ctx, "key")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})

	t.Run("Set", func(t *testing.T) {
		err := c.Set(ctx, "key", "value")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	})
}
