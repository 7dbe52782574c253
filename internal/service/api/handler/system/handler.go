// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 서비스 소개, 헬스체크, 버전 정보 등 백엔드 프록시와 무관한
// 시스템 수준의 API를 처리합니다.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/darkkaiser/homelab-api-server/internal/pkg/version"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/constants"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/homelab-api-server/pkg/log"
)

// Prober 백엔드에 대한 연결 상태 확인을 추상화한 인터페이스입니다.
type Prober interface {
	// Probe 백엔드에 연결 가능한지 확인합니다. 연결 불가 시 에러를 반환합니다.
	Probe(ctx context.Context) error
}

// Handler 시스템 엔드포인트 핸들러 (서비스 소개, 헬스체크, 버전 정보)
type Handler struct {
	probers map[string]Prober

	buildInfo version.Info
}

// NewHandler Handler 인스턴스를 생성합니다.
// probers의 키는 헬스체크 응답의 services 필드에 백엔드 ID로 그대로 노출됩니다.
func NewHandler(probers map[string]Prober, buildInfo version.Info) *Handler {
	if len(probers) == 0 {
		panic(constants.PanicMsgProbersRequired)
	}

	return &Handler{
		probers: probers,

		buildInfo: buildInfo,
	}
}

// RootHandler 서비스 소개와 공개 API 버전을 반환합니다.
func (h *Handler) RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, system.RootResponse{
		Message: constants.MsgServiceDescription,
		Version: constants.ServiceVersion,
	})
}

// HealthCheckHandler 서버와 백엔드의 연결 상태를 확인합니다.
//
// 서버가 응답 가능한 시점이라면 서버 자체는 정상이므로 전체 상태(status)는
// 항상 healthy이며 200 OK를 반환합니다. 개별 백엔드의 연결 여부는 services
// 필드에 connected/disconnected로 표시되고, 실패 원인은 응답에 포함되지 않고
// 로그로만 기록됩니다.
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	h.log(c).Debug(constants.LogMsgHealthCheck)

	ctx := c.Request().Context()

	// 백엔드별 연결 상태 수집
	services := make(map[string]string, len(h.probers))
	for id, prober := range h.probers {
		if err := prober.Probe(ctx); err != nil {
			services[id] = constants.BackendStateDisconnected

			h.log(c).WithFields(applog.Fields{
				"backend": id,
				"error":   err,
			}).Error("백엔드 연결 상태 확인 실패")

			continue
		}

		services[id] = constants.BackendStateConnected
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:    constants.HealthStatusHealthy,
		Message:   constants.MsgAPIRunning,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   constants.ServiceVersion,
		Services:  services,
	})
}

// VersionHandler 서버의 빌드 버전 정보를 반환합니다.
// Git 커밋 해시, 빌드 날짜, Go 버전을 포함하며 배포 버전 확인에 사용됩니다.
func (h *Handler) VersionHandler(c echo.Context) error {
	h.log(c).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.Commit,
		BuildDate: h.buildInfo.BuildDate,
		GoVersion: h.buildInfo.GoVersion,
	})
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	})
}
