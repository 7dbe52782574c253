// Package system 시스템 엔드포인트의 응답 모델을 정의합니다.
package system

// HealthResponse 헬스체크 응답
type HealthResponse struct {
	// Status 서버 상태 (서버가 응답 가능한 시점이므로 항상 "healthy")
	Status string `json:"status"`

	// Message 상태 설명 메시지
	Message string `json:"message"`

	// Timestamp 헬스체크 수행 시각 (RFC 3339, UTC)
	Timestamp string `json:"timestamp"`

	// Version 외부에 공개되는 API 버전
	Version string `json:"version"`

	// Services 백엔드별 연결 상태 (connected/disconnected)
	Services map[string]string `json:"services"`
}
