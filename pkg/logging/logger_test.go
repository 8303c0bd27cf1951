package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm/logger"
)

func TestInitLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := InitLogger(Options{Level: "warn", Path: path})
	if err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	t.Cleanup(func() { Logger = zap.NewNop() })

	if AtomicLevel.Level() != zap.WarnLevel {
		t.Errorf("level = %v, want warn", AtomicLevel.Level())
	}

	l.Info("dropped")
	l.Warn("kept", zap.String("key", "value"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("log file = %s", out)
	}
}

func TestInitLoggerBadLevel(t *testing.T) {
	if _, err := InitLogger(Options{Level: "loud"}); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	t.Cleanup(func() { Logger = zap.NewNop() })

	if AtomicLevel.Level() != zap.InfoLevel {
		t.Errorf("level = %v, want info", AtomicLevel.Level())
	}
}

func TestToGormLogLevel(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want logger.LogLevel
	}{
		{zapcore.DebugLevel, logger.Info},
		{zapcore.InfoLevel, logger.Warn},
		{zapcore.WarnLevel, logger.Warn},
		{zapcore.ErrorLevel, logger.Error},
		{zapcore.FatalLevel, logger.Error},
	}

	for _, tt := range tests {
		if got := ToGormLogLevel(tt.in); got != tt.want {
			t.Errorf("ToGormLogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
