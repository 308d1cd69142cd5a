package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.log")

	logger, err := NewZapLogger(Config{
		Level:       "warn",
		Format:      "json",
		Output:      "file",
		FilePath:    path,
		ServiceName: "merchant-gateway",
	})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger.Warn("slow query")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"slow query"`)
	assert.Contains(t, string(data), `"service":"merchant-gateway"`)
	assert.Contains(t, string(data), `"log.level":"warn"`)
}

func TestNewZapLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewZapLogger(Config{Level: "verbose", Output: "stderr"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
