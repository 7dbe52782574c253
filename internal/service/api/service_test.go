package api

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/darkkaiser/homelab-api-server/internal/config"
	"github.com/darkkaiser/homelab-api-server/internal/pkg/version"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/constants"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestConfig 테스트용 설정을 생성합니다.
// 포트 0을 지정하여 사용 가능한 임의의 포트에 바인딩되도록 합니다.
func newTestConfig() *config.AppConfig {
	return &config.AppConfig{
		API: config.APIConfig{ListenPort: 0},
		Postgres: config.PostgresConfig{
			Host: "localhost", Port: 5432, Database: "homelab", User: "postgres",
		},
		Redis:    config.RedisConfig{Host: "localhost", Port: 6379},
		RabbitMQ: config.RabbitMQConfig{Host: "localhost", Port: 5672, VHost: "/", User: "admin"},
	}
}

// waitForDone WaitGroup 완료를 제한 시간 내에 대기합니다.
func waitForDone(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("서비스가 제한 시간 내에 종료되지 않았습니다")
	}
}

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("성공: 올바른 의존성으로 서비스 생성", func(t *testing.T) {
		t.Parallel()

		s := NewService(newTestConfig(), version.Info{Version: "v1.0.0"})

		require.NotNil(t, s)
		assert.False(t, s.running)
	})

	t.Run("실패: AppConfig가 nil인 경우 Panic", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
			NewService(nil, version.Info{})
		})
	})
}

func TestService_StartAndShutdown(t *testing.T) {
	s := NewService(newTestConfig(), version.Info{})

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	require.NoError(t, s.Start(serviceStopCtx, serviceStopWG))

	// 서버 바인딩 완료 대기
	time.Sleep(100 * time.Millisecond)

	s.runningMu.Lock()
	assert.True(t, s.running)
	s.runningMu.Unlock()

	cancel()
	waitForDone(t, serviceStopWG)

	s.runningMu.Lock()
	assert.False(t, s.running)
	s.runningMu.Unlock()
}

func TestService_StartTwice(t *testing.T) {
	s := NewService(newTestConfig(), version.Info{})

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	require.NoError(t, s.Start(serviceStopCtx, serviceStopWG))

	time.Sleep(100 * time.Millisecond)

	// 중복 시작은 에러 없이 무시되어야 함
	serviceStopWG.Add(1)
	require.NoError(t, s.Start(serviceStopCtx, serviceStopWG))

	cancel()
	waitForDone(t, serviceStopWG)
}
