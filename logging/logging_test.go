package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitReturnsWorkingLogger(t *testing.T) {
	logger := Init(Options{Level: "debug"})
	if logger == nil {
		t.Fatal("expected a logger")
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug level should be enabled")
	}
}

func TestSetLevelFallsBackToInfo(t *testing.T) {
	SetLevel("warn")
	if level.Level() != zap.WarnLevel {
		t.Fatalf("expected warn, got %v", level.Level())
	}

	SetLevel("chatty")
	if level.Level() != zap.InfoLevel {
		t.Fatalf("unknown level should fall back to info, got %v", level.Level())
	}
}
