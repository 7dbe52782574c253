// Package metrics 프로세스 전역 Prometheus 메트릭 레지스트리를 제공합니다.
//
// 레지스트리는 서버 시작 시 한 번 생성되며, HTTP 요청 카운터와 처리 시간
// 히스토그램을 보유합니다. 모든 메트릭 갱신 연산은 Prometheus 클라이언트가
// 보장하는 원자적 연산으로 수행되므로 동시 요청 환경에서 안전합니다.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics HTTP 요청 관련 메트릭과 이를 보유한 레지스트리입니다.
type Metrics struct {
	registry *prometheus.Registry

	requestCount    *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// New 전용 레지스트리를 생성하고 메트릭을 등록하여 반환합니다.
//
// 전역 기본 레지스트리(prometheus.DefaultRegisterer)를 사용하지 않고 전용
// 레지스트리를 생성하므로, Go 런타임 기본 콜렉터가 섞이지 않으며 테스트 간
// 상태 격리가 보장됩니다.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	requestDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration",
		},
	)

	registry.MustRegister(requestCount, requestDuration)

	return &Metrics{
		registry: registry,

		requestCount:    requestCount,
		requestDuration: requestDuration,
	}
}

// ObserveRequest 요청 1건에 대한 카운터 증가와 처리 시간 기록을 수행합니다.
func (m *Metrics) ObserveRequest(method, endpoint string, duration time.Duration) {
	m.requestCount.WithLabelValues(method, endpoint).Inc()
	m.requestDuration.Observe(duration.Seconds())
}

// Handler 레지스트리의 메트릭을 텍스트 노출 형식으로 제공하는 핸들러를 반환합니다.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry 메트릭이 등록된 레지스트리를 반환합니다. (테스트의 상태 검증용)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
