package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"빈 문자열", "", ""},
		{"3자 이하는 전체 마스킹", "abc", "***"},
		{"12자 이하는 앞 4자만 표시", "password123", "pass***"},
		{"긴 값은 앞뒤 4자씩 표시", "super-secret-api-key", "supe***-key"},
		{"경계값: 정확히 12자", "abcdefghijkl", "abcd***"},
		{"경계값: 13자", "abcdefghijklm", "abcd***jklm"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, MaskSensitiveData(tt.input))
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		sep      string
		expected []string
	}{
		{"일반적인 목록", "a, b, c", ",", []string{"a", "b", "c"}},
		{"앞뒤 공백 제거", "  alpha ,beta  ", ",", []string{"alpha", "beta"}},
		{"빈 항목 제외", "a,,b,", ",", []string{"a", "b"}},
		{"빈 문자열은 nil", "", ",", nil},
		{"공백만 있는 경우 nil", " , , ", ",", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SplitAndTrim(tt.input, tt.sep))
		})
	}
}
