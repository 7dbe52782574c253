package constants

// 필수 의존성 누락 시 사용되는 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 필수 의존성(AppConfig) 누락
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgPublisherRequired 필수 의존성(메시지 발행자) 누락
	PanicMsgPublisherRequired = "메시지 발행자(Publisher)는 필수입니다"

	// PanicMsgCacheStoreRequired 필수 의존성(캐시 저장소) 누락
	PanicMsgCacheStoreRequired = "캐시 저장소(Store)는 필수입니다"

	// PanicMsgUserStoreRequired 필수 의존성(사용자 저장소) 누락
	PanicMsgUserStoreRequired = "사용자 저장소(UserStore)는 필수입니다"

	// PanicMsgMetricsRequired 필수 의존성(메트릭 레지스트리) 누락
	PanicMsgMetricsRequired = "메트릭 레지스트리(Metrics)는 필수입니다"

	// PanicMsgProbersRequired 필수 의존성(백엔드 상태 프로브) 누락
	PanicMsgProbersRequired = "백엔드 상태 프로브(Prober)는 필수입니다"
)
