package request

// CacheSetRequest 캐시 저장 요청 본문
//
// 저장할 값은 value 쿼리 파라미터로 전달하는 방식을 우선하며,
// 쿼리 파라미터가 없는 경우 JSON 본문의 value 필드를 사용합니다.
type CacheSetRequest struct {
	// Value 캐시에 저장할 값
	Value string `json:"value"`
}
