package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{InvalidInput, "InvalidInput"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(999), "Unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}
