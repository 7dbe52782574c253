package api

import (
	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/homelab-api-server/internal/metrics"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/handler/cache"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/handler/database"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/handler/message"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/handler/system"
)

// handlers 라우트 등록에 필요한 핸들러 집합입니다.
type handlers struct {
	system   *system.Handler
	message  *message.Handler
	cache    *cache.Handler
	database *database.Handler
}

// SetupRoutes API 서비스의 전체 라우트를 등록합니다.
//
// 이 함수는 다음 엔드포인트들을 설정합니다:
//   - 시스템 엔드포인트: 서비스 소개(/), 헬스체크(/health), 버전 정보(/version)
//   - 모니터링: Prometheus 메트릭 노출(/metrics)
//   - 백엔드 프록시: 메시지 발행(/messages), 캐시 조회/저장(/cache/:key), 사용자 목록(/database/users)
func SetupRoutes(e *echo.Echo, h handlers, m *metrics.Metrics) {
	registerSystemRoutes(e, h.system, m)
	registerBackendRoutes(e, h)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler, m *metrics.Metrics) {
	e.GET("/", h.RootHandler)
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)

	// Prometheus 메트릭 노출 (텍스트 형식)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
}

func registerBackendRoutes(e *echo.Echo, h handlers) {
	e.POST("/messages", h.message.SendMessageHandler)

	e.GET("/cache/:key", h.cache.GetCacheHandler)
	e.POST("/cache/:key", h.cache.SetCacheHandler)

	e.GET("/database/users", h.database.GetUsersHandler)
}
