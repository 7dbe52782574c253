package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "민감 파라미터 없는 URI는 원본 유지",
			uri:      "/cache/greeting?value=hello",
			expected: "/cache/greeting?value=hello",
		},
		{
			name:     "password 파라미터 마스킹",
			uri:      "/login?password=supersecret",
			expected: "/login?password=supe%2A%2A%2A",
		},
		{
			name:     "token 파라미터 마스킹",
			uri:      "/test?token=abc",
			expected: "/test?token=%2A%2A%2A",
		},
		{
			name:     "쿼리 없는 URI는 원본 유지",
			uri:      "/health",
			expected: "/health",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	t.Parallel()

	t.Run("정상 요청 처리 흐름 유지", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		e.Use(HTTPLogger())
		e.GET("/", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("핸들러 에러는 에러 핸들러를 거쳐 응답", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		e.Use(HTTPLogger())
		e.GET("/", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusBadRequest, "잘못된 요청")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
