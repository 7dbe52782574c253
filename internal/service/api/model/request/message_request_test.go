package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRequest_QueueName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		request  MessageRequest
		expected string
	}{
		{"우선순위 미지정 시 기본 큐", MessageRequest{Message: "hello"}, "messages_normal"},
		{"우선순위 normal 지정", MessageRequest{Message: "hello", Priority: "normal"}, "messages_normal"},
		{"우선순위 high 지정", MessageRequest{Message: "hello", Priority: "high"}, "messages_high"},
		{"우선순위 low 지정", MessageRequest{Message: "hello", Priority: "low"}, "messages_low"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.request.QueueName())
		})
	}
}
