// Package database 데이터베이스 조회 엔드포인트 핸들러를 제공합니다.
package database

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/constants"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/httputil"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/homelab-api-server/pkg/log"
)

// UserStore 사용자 레코드 조회를 추상화한 인터페이스입니다.
type UserStore interface {
	// RecentUsers 최근 생성된 사용자 레코드를 최대 10건 조회합니다.
	RecentUsers(ctx context.Context) ([]map[string]any, error)
}

// Handler 데이터베이스 조회 엔드포인트 핸들러
type Handler struct {
	userStore UserStore
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(userStore UserStore) *Handler {
	if userStore == nil {
		panic(constants.PanicMsgUserStoreRequired)
	}

	return &Handler{
		userStore: userStore,
	}
}

// GetUsersHandler 최근 생성된 사용자 목록을 최대 10건 조회하여 반환합니다.
//
// 데이터베이스 접속 불가 시 503, 그 외의 조회 실패는 500을 반환합니다.
// 조회 결과가 없는 경우에도 200과 함께 빈 배열을 반환합니다.
func (h *Handler) GetUsersHandler(c echo.Context) error {
	users, err := h.userStore.RecentUsers(c.Request().Context())
	if err != nil {
		if apperrors.Is(err, apperrors.Unavailable) {
			return httputil.NewServiceUnavailableError(constants.ErrMsgDatabaseUnavailable)
		}

		h.log(c).WithFields(applog.Fields{
			"error": err,
		}).Error("사용자 목록 조회 실패")

		return httputil.NewInternalServerError(constants.ErrMsgGetUsersFailed)
	}

	return c.JSON(http.StatusOK, response.UsersResponse{
		Users: users,
	})
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
