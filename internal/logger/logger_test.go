package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, level := range []string{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		for _, dev := range []bool{true, false} {
			l, err := New(level, dev)
			require.NoError(t, err, "level %s", level)

			want, _ := zapcore.ParseLevel(level)
			assert.True(t, l.Core().Enabled(want))
			assert.False(t, l.Core().Enabled(want-1))
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}
