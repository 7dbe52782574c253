package httputil

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/homelab-api-server/internal/service/api/model/response"
)

func TestNewErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		newError     func(string) error
		expectedCode int
	}{
		{"400 Bad Request", NewBadRequestError, http.StatusBadRequest},
		{"404 Not Found", NewNotFoundError, http.StatusNotFound},
		{"429 Too Many Requests", NewTooManyRequestsError, http.StatusTooManyRequests},
		{"500 Internal Server Error", NewInternalServerError, http.StatusInternalServerError},
		{"503 Service Unavailable", NewServiceUnavailableError, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.newError("테스트 메시지")

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.expectedCode, he.Code)

			resp, ok := he.Message.(response.ErrorResponse)
			require.True(t, ok, "HTTPError의 Message는 ErrorResponse여야 합니다")
			assert.Equal(t, tt.expectedCode, resp.ResultCode)
			assert.Equal(t, "테스트 메시지", resp.Message)
		})
	}
}
