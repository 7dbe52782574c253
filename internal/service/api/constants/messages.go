package constants

// 클라이언트에게 반환되는 메시지 상수입니다.
//
// 백엔드 프록시 엔드포인트의 에러 메시지는 기존 클라이언트와의 호환성을 위해
// 영문 문구를 그대로 유지하며, 그 외 공통 HTTP 에러는 한국어 메시지를 사용합니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 서비스 소개
	// ------------------------------------------------------------------------------------------------

	// MsgServiceDescription 루트 엔드포인트에서 반환되는 서비스 소개 문구
	MsgServiceDescription = "Kubernetes Homelab API"

	// ServiceVersion 외부에 공개되는 API 버전
	ServiceVersion = "1.0.0"

	// ------------------------------------------------------------------------------------------------
	// 백엔드 프록시 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 404 Not Found
	ErrMsgCacheKeyNotFound = "Key not found"

	// 500 Internal Server Error
	ErrMsgSendMessageFailed = "Failed to send message"
	ErrMsgGetCacheFailed    = "Failed to get cache value"
	ErrMsgSetCacheFailed    = "Failed to set cache value"
	ErrMsgGetUsersFailed    = "Failed to get users"

	// 503 Service Unavailable
	ErrMsgRabbitMQUnavailable = "RabbitMQ service unavailable"
	ErrMsgRedisUnavailable    = "Redis service unavailable"
	ErrMsgDatabaseUnavailable = "Database service unavailable"

	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (상태 코드 순)
	// ------------------------------------------------------------------------------------------------

	// 400 Bad Request
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgCacheValueRequired    = "value는 필수입니다 (value 쿼리 파라미터 또는 JSON 본문)"

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"
)
