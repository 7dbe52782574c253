package system

// RootResponse 루트 엔드포인트의 서비스 소개 응답
type RootResponse struct {
	// Message 서비스 소개 문구
	Message string `json:"message"`

	// Version 외부에 공개되는 API 버전
	Version string `json:"version"`
}
