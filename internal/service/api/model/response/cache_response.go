package response

// CacheEntryResponse 캐시 조회 응답
type CacheEntryResponse struct {
	// Key 조회한 캐시 키
	Key string `json:"key"`

	// Value 키에 저장된 값
	Value string `json:"value"`
}

// CacheSetResponse 캐시 저장 응답
type CacheSetResponse struct {
	// Key 저장한 캐시 키
	Key string `json:"key"`

	// Value 저장된 값
	Value string `json:"value"`

	// Status 처리 상태 (저장 성공 시 "set")
	Status string `json:"status"`
}
