package response

// UsersResponse 사용자 목록 조회 응답
//
// 사용자 레코드는 테이블 스키마에 종속되지 않도록 컬럼명을 키로 하는 맵으로 반환됩니다.
type UsersResponse struct {
	// Users 최근 생성 순으로 정렬된 사용자 레코드 목록 (최대 10건)
	Users []map[string]any `json:"users"`
}
