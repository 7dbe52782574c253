package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(Unavailable, "데이터베이스에 연결할 수 없습니다")
	require.Error(t, err)

	var appErr *AppError
	require.True(t, As(err, &appErr))

	assert.Equal(t, Unavailable, appErr.Type())
	assert.Equal(t, "데이터베이스에 연결할 수 없습니다", appErr.Message())
	assert.Nil(t, appErr.Unwrap())
	assert.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "[Unavailable] 데이터베이스에 연결할 수 없습니다", err.Error())
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(NotFound, "키를 찾을 수 없습니다: %s", "user:1")
	require.Error(t, err)
	assert.Equal(t, "[NotFound] 키를 찾을 수 없습니다: user:1", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("성공: 원인 에러를 감싸고 체인 유지", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := Wrap(cause, Unavailable, "Redis 연결 실패")
		require.Error(t, err)

		assert.Equal(t, "[Unavailable] Redis 연결 실패: connection refused", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("성공: nil 에러는 nil 반환", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Wrap(nil, Unavailable, "무시됨"))
		assert.Nil(t, Wrapf(nil, Unavailable, "무시됨: %d", 1))
	})

	t.Run("성공: Wrapf 포맷 적용", func(t *testing.T) {
		t.Parallel()

		err := Wrapf(errors.New("timeout"), ExecutionFailed, "쿼리 실행 실패 (재시도: %d)", 3)
		assert.Equal(t, "[ExecutionFailed] 쿼리 실행 실패 (재시도: 3): timeout", err.Error())
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		errType  ErrorType
		expected bool
	}{
		{
			name:     "단일 에러의 타입 일치",
			err:      New(NotFound, "찾을 수 없음"),
			errType:  NotFound,
			expected: true,
		},
		{
			name:     "단일 에러의 타입 불일치",
			err:      New(NotFound, "찾을 수 없음"),
			errType:  Unavailable,
			expected: false,
		},
		{
			name:     "체인 안쪽의 타입 탐지",
			err:      Wrap(New(Unavailable, "연결 실패"), ExecutionFailed, "조회 실패"),
			errType:  Unavailable,
			expected: true,
		},
		{
			name:     "체인 바깥쪽의 타입 탐지",
			err:      Wrap(New(Unavailable, "연결 실패"), ExecutionFailed, "조회 실패"),
			errType:  ExecutionFailed,
			expected: true,
		},
		{
			name:     "외부 에러만 있는 경우",
			err:      errors.New("plain error"),
			errType:  Unknown,
			expected: false,
		},
		{
			name:     "nil 에러",
			err:      nil,
			errType:  NotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Is(tt.err, tt.errType))
		})
	}
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	t.Run("성공: 다중 래핑된 에러의 근본 원인 반환", func(t *testing.T) {
		t.Parallel()

		root := errors.New("i/o timeout")
		err := Wrap(Wrap(root, Unavailable, "연결 실패"), ExecutionFailed, "조회 실패")

		assert.Equal(t, root, RootCause(err))
	})

	t.Run("성공: 래핑되지 않은 에러는 자기 자신 반환", func(t *testing.T) {
		t.Parallel()

		err := New(Internal, "내부 오류")
		assert.Equal(t, err, RootCause(err))
	})

	t.Run("성공: nil 에러는 nil 반환", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, RootCause(nil))
	})
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{
			name:     "단일 AppError",
			err:      New(NotFound, "찾을 수 없음"),
			expected: NotFound,
		},
		{
			name:     "래핑된 경우 가장 안쪽 AppError의 타입",
			err:      Wrap(New(Unavailable, "연결 실패"), ExecutionFailed, "조회 실패"),
			expected: Unavailable,
		},
		{
			name:     "외부 에러를 감싼 경우 감싼 AppError의 타입",
			err:      Wrap(errors.New("redis: nil"), NotFound, "키를 찾을 수 없음"),
			expected: NotFound,
		},
		{
			name:     "AppError가 없는 경우 Unknown",
			err:      errors.New("plain error"),
			expected: Unknown,
		},
		{
			name:     "nil 에러는 Unknown",
			err:      nil,
			expected: Unknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, UnderlyingType(tt.err))
		})
	}
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(errors.New("connection refused"), Unavailable, "연결 실패")

	t.Run("%s는 Error()와 동일", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	})

	t.Run("%q는 인용 부호 포함", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
	})

	t.Run("%+v는 스택과 원인 에러 포함", func(t *testing.T) {
		t.Parallel()

		formatted := fmt.Sprintf("%+v", err)
		assert.Contains(t, formatted, "[Unavailable] 연결 실패")
		assert.Contains(t, formatted, "Stack trace:")
		assert.Contains(t, formatted, "Caused by:")
		assert.Contains(t, formatted, "connection refused")
	})
}
