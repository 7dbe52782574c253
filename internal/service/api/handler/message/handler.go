// Package message 메시지 발행 엔드포인트 핸들러를 제공합니다.
package message

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
	"github.com/darkkaiser/homelab-api-server/internal/pkg/validator"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/constants"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/httputil"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/model/request"
	"github.com/darkkaiser/homelab-api-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/homelab-api-server/pkg/log"
)

// Publisher 메시지 브로커로의 발행을 추상화한 인터페이스입니다.
type Publisher interface {
	// Publish 지정된 큐에 JSON 메시지를 발행합니다.
	Publish(ctx context.Context, queue string, body []byte) error
}

// messageEnvelope 브로커에 적재되는 메시지 본문입니다.
// 소비자가 메시지를 추적할 수 있도록 식별자와 발행 시각을 포함합니다.
type messageEnvelope struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Priority  string `json:"priority"`
	Timestamp string `json:"timestamp"`
}

// Handler 메시지 발행 엔드포인트 핸들러
type Handler struct {
	publisher Publisher
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(publisher Publisher) *Handler {
	if publisher == nil {
		panic(constants.PanicMsgPublisherRequired)
	}

	return &Handler{
		publisher: publisher,
	}
}

// SendMessageHandler 요청된 메시지를 우선순위별 큐에 발행합니다.
//
// 처리 흐름:
//  1. 요청 바인딩 및 입력 검증 (message 필수)
//  2. 메시지 식별자 및 발행 시각 생성
//  3. 우선순위별 큐(messages_<priority>)에 JSON 발행
//  4. 발행 결과 응답 (브로커 접속 불가: 503, 발행 실패: 500)
func (h *Handler) SendMessageHandler(c echo.Context) error {
	// 1. 요청 바인딩
	req := new(request.MessageRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
	}

	// 2. 입력 검증
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	priority := req.Priority
	if priority == "" {
		priority = request.DefaultMessagePriority
	}
	queue := req.QueueName()

	// 3. 메시지 본문 생성
	messageID := fmt.Sprintf("msg_%d", time.Now().UTC().UnixNano())
	timestamp := time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(messageEnvelope{
		ID:        messageID,
		Message:   req.Message,
		Priority:  priority,
		Timestamp: timestamp,
	})
	if err != nil {
		return httputil.NewInternalServerError(constants.ErrMsgSendMessageFailed)
	}

	// 4. 발행
	if err := h.publisher.Publish(c.Request().Context(), queue, body); err != nil {
		h.log(c).WithFields(applog.Fields{
			"queue": queue,
			"error": err,
		}).Error("메시지 발행 실패")

		if apperrors.Is(err, apperrors.Unavailable) {
			return httputil.NewServiceUnavailableError(constants.ErrMsgRabbitMQUnavailable)
		}
		return httputil.NewInternalServerError(constants.ErrMsgSendMessageFailed)
	}

	h.log(c).WithFields(applog.Fields{
		"queue":          queue,
		"message_id":     messageID,
		"message_length": len(req.Message),
	}).Info("메시지 발행 성공")

	return c.JSON(http.StatusOK, response.MessageResponse{
		ID:        messageID,
		Message:   req.Message,
		Status:    "sent",
		Timestamp: timestamp,
	})
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}
