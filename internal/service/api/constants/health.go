package constants

// 헬스체크 및 백엔드 연결 상태 관련 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 헬스체크 상태
	// ------------------------------------------------------------------------------------------------

	// HealthStatusHealthy 헬스체크 상태: 정상
	HealthStatusHealthy = "healthy"

	// MsgAPIRunning 헬스체크 응답 메시지
	MsgAPIRunning = "API is running"

	// ------------------------------------------------------------------------------------------------
	// 백엔드 식별자
	// ------------------------------------------------------------------------------------------------

	// BackendPostgreSQL 백엔드 ID: PostgreSQL 데이터베이스
	BackendPostgreSQL = "postgresql"

	// BackendRedis 백엔드 ID: Redis 캐시
	BackendRedis = "redis"

	// BackendRabbitMQ 백엔드 ID: RabbitMQ 메시지 브로커
	BackendRabbitMQ = "rabbitmq"

	// ------------------------------------------------------------------------------------------------
	// 백엔드 연결 상태
	// ------------------------------------------------------------------------------------------------

	// BackendStateConnected 백엔드 연결 상태: 연결됨
	BackendStateConnected = "connected"

	// BackendStateDisconnected 백엔드 연결 상태: 연결 안 됨
	BackendStateDisconnected = "disconnected"
)
