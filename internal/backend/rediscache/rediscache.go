// Package rediscache Redis 백엔드에 대한 요청 단위의 캐시 조회/저장을 제공합니다.
//
// 클라이언트를 재사용하지 않고 매 요청마다 생성하고 닫습니다. 접속 수립에
// 실패하면 Unavailable, 존재하지 않는 키는 NotFound, 그 외의 호출 실패는
// ExecutionFailed 타입의 에러로 분류됩니다.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/darkkaiser/homelab-api-server/internal/config"
	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
)

// EntryTTL 캐시 항목의 고정 만료 시간입니다. (1시간)
const EntryTTL = time.Hour

// Connector Redis 접속 정보를 보관하며 요청 단위의 클라이언트를 생성합니다.
type Connector struct {
	cfg config.RedisConfig
}

// NewConnector Connector 인스턴스를 생성합니다.
func NewConnector(cfg config.RedisConfig) *Connector {
	return &Connector{cfg: cfg}
}

// connect Redis 클라이언트를 생성하고 PING으로 연결을 검증합니다.
// 실패 시 Unavailable 타입의 에러를 반환하며, 호출자는 이를 503 응답으로 변환해야 합니다.
func (c *Connector) connect(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: c.cfg.Addr(),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "Redis에 연결할 수 없습니다")
	}

	return client, nil
}

// Probe PING으로 백엔드 연결 상태를 확인합니다.
func (c *Connector) Probe(ctx context.Context) error {
	client, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return nil
}

// Get 키에 저장된 값을 조회합니다. 키가 존재하지 않으면 NotFound 타입의 에러를 반환합니다.
func (c *Connector) Get(ctx context.Context, key string) (string, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	value, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.Wrap(err, apperrors.NotFound, "요청한 키가 캐시에 존재하지 않습니다")
		}
		return "", apperrors.Wrap(err, apperrors.ExecutionFailed, "캐시 값 조회에 실패했습니다")
	}

	return value, nil
}

// Set 키에 값을 저장합니다. 고정 TTL(1시간)이 적용되며 기존 값은 항상 덮어씁니다.
func (c *Connector) Set(ctx context.Context, key, value string) error {
	client, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Set(ctx, key, value, EntryTTL).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "캐시 값 저장에 실패했습니다")
	}

	return nil
}
