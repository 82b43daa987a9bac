package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_BlankPathIsNop(t *testing.T) {
	logger, err := New("  ", "debug")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	logger, err := New(path, "warn")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", zap.Int("count", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"count":3`)
	assert.Contains(t, out, `"logger":"bureaucrat"`)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "app.log"), "loud")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":       zapcore.InfoLevel,
		"info":   zapcore.InfoLevel,
		" DEBUG": zapcore.DebugLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
