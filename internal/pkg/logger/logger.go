// Package logger owns the process-wide structured logger.
//
// Stageline writes every log line through one zap instance, configured
// once at startup from the log section of the config: JSON output for
// deployed servers, console output for local development. Packages log
// through the leveled helpers rather than carrying a logger value around.
package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	global *zap.Logger
	level  = zap.NewAtomicLevel()
)

// Init configures the global logger. level is one of debug, info, warn or
// error; format is json or console. The first successful call wins, later
// calls are no-ops, so test packages can initialize without coordination.
func Init(lvl, format string) error {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		return nil
	}

	if err := level.UnmarshalText([]byte(lvl)); err != nil {
		return fmt.Errorf("parse log level %q: %w", lvl, err)
	}

	logger, err := build(format)
	if err != nil {
		return err
	}
	global = logger
	return nil
}

func build(format string) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = level
	return cfg.Build(zap.AddCallerSkip(1))
}

// L returns the global logger. When Init was never called it falls back to
// JSON output at warn level, so library code and tests can log without a
// bootstrap step.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		level.SetLevel(zapcore.WarnLevel)
		global = zap.Must(build("json"))
	}
	return global
}

// Debug logs a message at DebugLevel.
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info logs a message at InfoLevel.
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Sync flushes buffered entries. Safe to call before Init.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return nil
	}
	return global.Sync()
}
