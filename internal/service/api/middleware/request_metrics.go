package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/homelab-api-server/internal/metrics"
)

// RequestMetrics 요청별로 Prometheus 메트릭을 기록하는 미들웨어를 반환합니다.
//
// 요청 카운터(http_requests_total)의 endpoint 레이블에는 등록된 라우트 경로가
// 사용되며, 경로 파라미터 구간은 잘라내어 레이블 카디널리티가 폭증하지 않도록
// 합니다. (예: /cache/:key -> /cache)
func RequestMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			m.ObserveRequest(c.Request().Method, normalizeEndpoint(c.Path()), time.Since(start))

			return err
		}
	}
}

// normalizeEndpoint 라우트 경로에서 파라미터 구간(:key 등)을 제거합니다.
func normalizeEndpoint(path string) string {
	if path == "" {
		return "/"
	}

	if idx := strings.Index(path, "/:"); idx > 0 {
		return path[:idx]
	}

	return path
}
