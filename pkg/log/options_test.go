package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	t.Run("성공: 유효한 최소 설정", func(t *testing.T) {
		t.Parallel()

		opts := Options{Name: "homelab-api-server"}
		assert.NoError(t, opts.Validate())
	})

	t.Run("실패: Name이 비어있는 경우", func(t *testing.T) {
		t.Parallel()

		opts := Options{}
		assert.Error(t, opts.Validate())
	})

	t.Run("실패: Dir 경로가 이미 파일로 존재하는 경우", func(t *testing.T) {
		t.Parallel()

		filePath := filepath.Join(t.TempDir(), "logs")
		require.NoError(t, os.WriteFile(filePath, []byte("data"), 0o600))

		opts := Options{Name: "homelab-api-server", Dir: filePath}
		assert.Error(t, opts.Validate())
	})

	t.Run("실패: 음수 값 설정", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			opts Options
		}{
			{"MaxAge 음수", Options{Name: "app", MaxAge: -1}},
			{"MaxSizeMB 음수", Options{Name: "app", MaxSizeMB: -1}},
			{"MaxBackups 음수", Options{Name: "app", MaxBackups: -1}},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				assert.Error(t, tt.opts.Validate())
			})
		}
	})
}

func TestNewProductionOptions(t *testing.T) {
	t.Parallel()

	opts := NewProductionOptions("homelab-api-server")

	assert.Equal(t, "homelab-api-server", opts.Name)
	assert.Equal(t, InfoLevel, opts.Level)
	assert.Equal(t, 30, opts.MaxAge)
	assert.Equal(t, 100, opts.MaxSizeMB)
	assert.Equal(t, 20, opts.MaxBackups)
	assert.False(t, opts.EnableConsoleLog)
	assert.True(t, opts.ReportCaller)

	assert.NoError(t, opts.Validate())
}

func TestNewDevelopmentOptions(t *testing.T) {
	t.Parallel()

	opts := NewDevelopmentOptions("homelab-api-server")

	assert.Equal(t, "homelab-api-server", opts.Name)
	assert.Equal(t, TraceLevel, opts.Level)
	assert.Equal(t, 1, opts.MaxAge)
	assert.Equal(t, 50, opts.MaxSizeMB)
	assert.Equal(t, 5, opts.MaxBackups)
	assert.True(t, opts.EnableConsoleLog)
	assert.True(t, opts.ReportCaller)

	assert.NoError(t, opts.Validate())
}
