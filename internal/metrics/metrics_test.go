package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	m := New()

	require.NotNil(t, m)
	require.NotNil(t, m.registry)
	require.NotNil(t, m.requestCount)
	require.NotNil(t, m.requestDuration)

	// 서로 다른 인스턴스는 독립적인 레지스트리를 가져야 함
	assert.NotSame(t, m.Registry(), New().Registry())
}

func TestMetrics_ObserveRequest(t *testing.T) {
	t.Parallel()

	m := New()

	m.ObserveRequest(http.MethodGet, "/health", 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/health", 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/messages", 30*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodGet, "/health")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodPost, "/messages")))

	// 관측되지 않은 레이블 조합은 0
	assert.Equal(t, float64(0), testutil.ToFloat64(m.requestCount.WithLabelValues(http.MethodDelete, "/health")))
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveRequest(http.MethodGet, "/", 5*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "http_request_duration_seconds")

	// 전용 레지스트리이므로 Go 런타임 기본 콜렉터의 메트릭은 노출되지 않아야 함
	assert.NotContains(t, body, "go_goroutines")
}
