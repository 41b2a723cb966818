package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func resetLogger() {
	global = nil
}

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"json info", "info", "json", zapcore.InfoLevel, false},
		{"console debug", "debug", "console", zapcore.DebugLevel, false},
		{"json warn", "warn", "json", zapcore.WarnLevel, false},
		{"json error", "error", "json", zapcore.ErrorLevel, false},
		{"invalid level", "invalid", "json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLogger()
			err := Init(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("Init(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
				return
			}
			if !tt.wantErr && level.Level() != tt.wantLevel {
				t.Errorf("level = %v, want %v", level.Level(), tt.wantLevel)
			}
		})
	}
}

func TestInitFirstCallWins(t *testing.T) {
	resetLogger()

	if err := Init("debug", "json"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Init("error", "json"); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if level.Level() != zapcore.DebugLevel {
		t.Errorf("level = %v, second Init must not override the first", level.Level())
	}
}

func TestInitFailureIsRetryable(t *testing.T) {
	resetLogger()

	if err := Init("bogus", "json"); err == nil {
		t.Fatal("Init() with a bad level should fail")
	}
	if err := Init("info", "json"); err != nil {
		t.Fatalf("Init() after a failed attempt error = %v", err)
	}
	if level.Level() != zapcore.InfoLevel {
		t.Errorf("level = %v, want info", level.Level())
	}
}

func TestL_DefaultsWithoutInit(t *testing.T) {
	resetLogger()

	logger := L()
	if logger == nil {
		t.Fatal("L() without Init should build a default logger")
	}
	if level.Level() != zapcore.WarnLevel {
		t.Errorf("fallback level = %v, want warn", level.Level())
	}
}

func TestSync_NoInit(t *testing.T) {
	resetLogger()
	if err := Sync(); err != nil {
		t.Errorf("Sync() without Init should be a no-op, got %v", err)
	}
}
