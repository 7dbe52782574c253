// Package service 애플리케이션을 구성하는 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 독립적인 생명주기를 가지는 서비스의 공통 인터페이스입니다.
//
// 각 서비스는 Start 호출 시 별도의 고루틴에서 실행을 시작하고,
// serviceStopCtx가 취소되면 정리 작업을 수행한 후 serviceStopWG.Done()을
// 호출하여 종료 완료를 알려야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
