package logger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT * FROM payments", 1 }

	tests := []struct {
		name          string
		level         gormlogger.LogLevel
		begin         time.Time
		err           error
		expectedLevel zapcore.Level
		expectedCount int
	}{
		{"query error", gormlogger.Warn, time.Now(), fmt.Errorf("syntax error"), zapcore.ErrorLevel, 1},
		{"record not found ignored", gormlogger.Info, time.Now(), gorm.ErrRecordNotFound, zapcore.DebugLevel, 1},
		{"slow query", gormlogger.Warn, time.Now().Add(-time.Second), nil, zapcore.WarnLevel, 1},
		{"fast query below info", gormlogger.Warn, time.Now(), nil, zapcore.DebugLevel, 0},
		{"silent", gormlogger.Silent, time.Now(), fmt.Errorf("boom"), zapcore.ErrorLevel, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l := NewGormLogger(zap.New(core), gormlogger.Info, 200*time.Millisecond, true).LogMode(tt.level)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			assert.Equal(t, tt.expectedCount, logs.Len())
			if tt.expectedCount > 0 {
				entry := logs.All()[0]
				assert.Equal(t, tt.expectedLevel, entry.Level)
				assert.Equal(t, "SELECT * FROM payments", entry.ContextMap()["db.statement"])
			}
		})
	}
}
