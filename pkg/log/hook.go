package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 이벤트를 로그 파일과 콘솔(Stdout)로 분배하는 logrus Hook입니다.
//
// Logrus의 기본 출력은 io.Discard로 비활성화되어 있으며, 모든 로그 기록은
// 이 Hook을 통해서만 수행됩니다. 파일 쓰기 실패가 콘솔 출력에 영향을 주지
// 않도록 각 Writer의 에러를 독립적으로 처리합니다.
type hook struct {
	fileWriter    io.Writer // 로테이션되는 로그 파일 채널
	consoleWriter io.Writer // 실시간 모니터링을 위한 표준 출력 채널 (nil이면 비활성화)

	formatter Formatter

	mu sync.RWMutex // 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어

	closed bool // true일 경우 모든 로그 기록 요청을 거부
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 발생한 로그 이벤트를 포맷팅하여 파일과 콘솔에 기록합니다.
func (h *hook) Fire(entry *Entry) error {
	// Read Lock을 획득하여 동시 로깅을 허용하며, 작업 수행 중 Hook이 종료되지 않도록 보호합니다.
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	// 로그 포맷팅 (한 번만 수행하여 재사용)
	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 쓰기 실패는 전체 로깅 시스템의 가용성에 영향을 주지 않도록 전파하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	if h.fileWriter != nil {
		if _, err := h.fileWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] 로그 파일 쓰기 실패 (데이터 유실 위험): %v\n", err)
			return err
		}
	}

	return nil
}

// Close Hook을 비활성화하여 이후의 모든 로그 기록 요청을 무시합니다.
// 종료 중인 파일에 대한 쓰기 시도로 인한 패닉을 방지하기 위해 파일을 닫기 전에 호출해야 합니다.
func (h *hook) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
}
