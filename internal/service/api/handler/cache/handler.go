// Package cache 캐시 프록시 엔드포인트 핸들러를 제공합니다.
package cache

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/constants"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/httputil"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/model/request"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/homelab-api-server/pkg/log"
)

// Store 캐시 백엔드의 조회/저장을 추상화한 인터페이스입니다.
type Store interface {
	// Get 키에 저장된 값을 조회합니다. 키가 존재하지 않으면 NotFound 타입의 에러를 반환합니다.
	Get(ctx context.Context, key string) (string, error)

	// Set 키에 값을 저장합니다. 기존 값은 덮어쓰며 고정 TTL이 적용됩니다.
	Set(ctx context.Context, key, value string) error
}

// Handler 캐시 프록시 엔드포인트 핸들러
type Handler struct {
	store Store
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(store Store) *Handler {
	if store == nil {
		panic(constants.PanicMsgCacheStoreRequired)
	}

	return &Handler{
		store: store,
	}
}

// GetCacheHandler 캐시 키에 저장된 값을 조회하여 반환합니다.
//
// 키가 존재하지 않으면 404, 캐시 백엔드 접속 불가 시 503,
// 그 외의 조회 실패는 500을 반환합니다.
func (h *Handler) GetCacheHandler(c echo.Context) error {
	key := c.Param("key")

	value, err := h.store.Get(c.Request().Context(), key)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.NotFound):
			return httputil.NewNotFoundError(constants.ErrMsgCacheKeyNotFound)
		case apperrors.Is(err, apperrors.Unavailable):
			return httputil.NewServiceUnavailableError(constants.ErrMsgRedisUnavailable)
		default:
			h.log(c).WithFields(applog.Fields{
				"key":   key,
				"error": err,
			}).Error("캐시 값 조회 실패")

			return httputil.NewInternalServerError(constants.ErrMsgGetCacheFailed)
		}
	}

	return c.JSON(http.StatusOK, response.CacheEntryResponse{
		Key:   key,
		Value: value,
	})
}

// SetCacheHandler 캐시 키에 값을 저장합니다.
//
// 저장할 값은 value 쿼리 파라미터를 우선하며, 쿼리 파라미터가 없는 경우
// JSON 본문의 value 필드를 사용합니다. 두 곳 모두 값이 없으면 400을 반환합니다.
func (h *Handler) SetCacheHandler(c echo.Context) error {
	key := c.Param("key")

	value := c.QueryParam("value")
	if value == "" {
		req := new(request.CacheSetRequest)
		if err := c.Bind(req); err != nil {
			return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
		}
		value = req.Value
	}

	if value == "" {
		return httputil.NewBadRequestError(constants.ErrMsgCacheValueRequired)
	}

	if err := h.store.Set(c.Request().Context(), key, value); err != nil {
		if apperrors.Is(err, apperrors.Unavailable) {
			return httputil.NewServiceUnavailableError(constants.ErrMsgRedisUnavailable)
		}

		h.log(c).WithFields(applog.Fields{
			"key":   key,
			"error": err,
		}).Error("캐시 값 저장 실패")

		return httputil.NewInternalServerError(constants.ErrMsgSetCacheFailed)
	}

	h.log(c).WithFields(applog.Fields{
		"key": key,
	}).Info("캐시 값 저장 성공")

	return c.JSON(http.StatusOK, response.CacheSetResponse{
		Key:    key,
		Value:  value,
		Status: "set",
	})
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
