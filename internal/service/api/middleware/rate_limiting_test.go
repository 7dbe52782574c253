package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// assertRequest 지정된 IP로 요청을 보내고 기대한 상태 코드를 검증합니다.
func assertRequest(t *testing.T, e *echo.Echo, ip string, expectedStatus int) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, expectedStatus, rec.Code)
}

// newRateLimitedServer RateLimiting 미들웨어가 적용된 테스트 서버를 생성합니다.
func newRateLimitedServer(t *testing.T, rps, burst int) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Use(RateLimiting(rps, burst))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestNewIPRateLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	assert.NotNil(t, limiter.limiters)
	assert.Equal(t, rate.Limit(10), limiter.rate)
	assert.Equal(t, 20, limiter.burst)
	assert.Empty(t, limiter.limiters)
}

func TestIPRateLimiter_GetLimiter(t *testing.T) {
	t.Parallel()

	limiter := newIPRateLimiter(10, 20)

	first := limiter.getLimiter("1.1.1.1")
	require.NotNil(t, first)

	// 동일 IP는 동일한 Limiter 재사용
	assert.Same(t, first, limiter.getLimiter("1.1.1.1"))

	// 다른 IP는 독립적인 Limiter 생성
	assert.NotSame(t, first, limiter.getLimiter("2.2.2.2"))
}

func TestRateLimiting_InputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		requestsPerSecond int
		burst             int
		expectedMessage   string
	}{
		{"RequestsPerSecond가 0", 0, 20, "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{"RequestsPerSecond가 음수", -10, 20, "[RateLimiting] requestsPerSecond는 양수여야 합니다"},
		{"Burst가 0", 10, 0, "[RateLimiting] burst는 양수여야 합니다"},
		{"Burst가 음수", 10, -20, "[RateLimiting] burst는 양수여야 합니다"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.PanicsWithValue(t, tt.expectedMessage, func() {
				RateLimiting(tt.requestsPerSecond, tt.burst)
			})
		})
	}
}

func TestRateLimiting_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("버스트 내 요청 허용 후 초과 요청 차단", func(t *testing.T) {
		t.Parallel()

		e := newRateLimitedServer(t, 1, 5)

		for i := 0; i < 5; i++ {
			assertRequest(t, e, "1.1.1.1", http.StatusOK)
		}
		assertRequest(t, e, "1.1.1.1", http.StatusTooManyRequests)
	})

	t.Run("IP별로 독립적인 제한 적용", func(t *testing.T) {
		t.Parallel()

		e := newRateLimitedServer(t, 1, 1)

		// IP A 소진
		assertRequest(t, e, "1.1.1.1", http.StatusOK)
		assertRequest(t, e, "1.1.1.1", http.StatusTooManyRequests)

		// IP B는 영향 없어야 함
		assertRequest(t, e, "2.2.2.2", http.StatusOK)
	})

	t.Run("제한 초과 시 Retry-After 헤더 포함", func(t *testing.T) {
		t.Parallel()

		e := newRateLimitedServer(t, 1, 1)

		assertRequest(t, e, "3.3.3.3", http.StatusOK)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRealIP, "3.3.3.3")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}
