package response

// MessageResponse 메시지 발행 성공 응답
type MessageResponse struct {
	// ID 발행된 메시지의 고유 식별자 (예: msg_1756080000000000000)
	ID string `json:"id"`

	// Message 발행된 메시지 본문
	Message string `json:"message"`

	// Status 처리 상태 (발행 성공 시 "sent")
	Status string `json:"status"`

	// Timestamp 발행 처리 시각 (RFC 3339, UTC)
	Timestamp string `json:"timestamp"`
}
