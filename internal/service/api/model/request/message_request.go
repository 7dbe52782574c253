// Package request API 요청 본문 모델을 정의합니다.
package request

// DefaultMessagePriority 우선순위가 지정되지 않은 메시지에 적용되는 기본 우선순위입니다.
const DefaultMessagePriority = "normal"

// MessageRequest 메시지 발행 요청
type MessageRequest struct {
	// Message 발행할 메시지 본문 (필수)
	Message string `json:"message" validate:"required"`

	// Priority 메시지 우선순위 (선택, 기본값: normal)
	// 우선순위별로 별도의 큐(messages_<priority>)에 적재됩니다.
	Priority string `json:"priority"`
}

// QueueName 메시지가 적재될 큐 이름을 반환합니다.
// 우선순위가 비어 있으면 기본 우선순위(normal)가 적용됩니다.
func (r *MessageRequest) QueueName() string {
	priority := r.Priority
	if priority == "" {
		priority = DefaultMessagePriority
	}
	return "messages_" + priority
}
