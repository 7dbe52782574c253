package system

// VersionResponse 서버 빌드 버전 정보 응답
type VersionResponse struct {
	// Version 애플리케이션의 버전
	Version string `json:"version"`

	// Commit Git 커밋 해시
	Commit string `json:"commit"`

	// BuildDate 빌드 날짜
	BuildDate string `json:"build_date"`

	// GoVersion 빌드에 사용된 Go 컴파일러 버전
	GoVersion string `json:"go_version"`
}
