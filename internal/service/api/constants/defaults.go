package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	// 요청 처리가 이 시간을 초과하면 자동으로 취소되어 서버 리소스를 보호합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultReadTimeout 요청 본문 읽기 제한 시간
	DefaultReadTimeout = 30 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더 읽기 제한 시간
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한 시간
	DefaultWriteTimeout = 90 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결 유휴 제한 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 버스트 허용량
	DefaultRateLimitBurst = 40

	// DefaultMaxBodySize 요청 본문 최대 크기 (초과 시 413 응답)
	DefaultMaxBodySize = "2M"
)
