package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormLoggerTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), logger.Warn, 100*time.Millisecond)
	query := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	gl.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	gl.Trace(ctx, time.Now(), query, nil)
	if n := logs.Len(); n != 0 {
		t.Fatalf("%d entries for not-found and fast queries, want 0", n)
	}

	gl.Trace(ctx, time.Now(), query, errors.New("no such table"))
	gl.Trace(ctx, time.Now().Add(-time.Second), query, nil)

	entries := logs.TakeAll()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel || entries[1].Level != zapcore.WarnLevel {
		t.Errorf("levels = %v, %v", entries[0].Level, entries[1].Level)
	}

	gl.LogMode(logger.Info).Trace(ctx, time.Now(), query, nil)
	if logs.FilterMessage("GORM SQL").Len() != 1 {
		t.Error("query not logged at info mode")
	}

	gl.LogMode(logger.Silent).Trace(ctx, time.Now(), query, errors.New("ignored"))
	if logs.Len() != 1 {
		t.Error("silent mode logged")
	}
}
