package core

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides debug logging for the SDK shape layer.
// A nil *Logger discards everything.
type Logger struct {
	enabled bool
	sugar   *zap.SugaredLogger
}

// NewLogger creates a new logger writing to stderr.
// Debug and Info are emitted only when enabled; Warn and Error always are.
func NewLogger(enabled bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	if !enabled {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		zl = zap.NewNop()
	}
	return NewLoggerFromZap(zl, enabled)
}

// NewLoggerFromZap wraps an existing zap logger.
func NewLoggerFromZap(zl *zap.Logger, enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		sugar:   zl.Named("chimemessaging-go").Sugar(),
	}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debug logs a debug message (only if debug is enabled).
func (l *Logger) Debug(message string, args ...any) {
	if l.Enabled() {
		l.sugar.Debugf(message, args...)
	}
}

// Info logs an info message (only if debug is enabled).
func (l *Logger) Info(message string, args ...any) {
	if l.Enabled() {
		l.sugar.Infof(message, args...)
	}
}

// Warn logs a warning message (always logged).
func (l *Logger) Warn(message string, args ...any) {
	if l != nil {
		l.sugar.Warnf(message, args...)
	}
}

// Error logs an error message (always logged).
func (l *Logger) Error(message string, args ...any) {
	if l != nil {
		l.sugar.Errorf(message, args...)
	}
}

// Page logs one fetched page of a listing operation.
// The continuation token itself is never logged.
func (l *Logger) Page(operation string, page, items int, hasNext bool) {
	if l.Enabled() {
		l.sugar.Debugw("page fetched",
			"operation", operation,
			"page", page,
			"items", items,
			"hasNext", hasNext,
		)
	}
}

// Validation logs the outcome of validating a shape.
func (l *Logger) Validation(shape string, err error) {
	if !l.Enabled() {
		return
	}
	if err != nil {
		l.sugar.Debugw("validation failed", "shape", shape, "error", err)
		return
	}
	l.sugar.Debugw("validation passed", "shape", shape)
}

// Enabled returns whether debug logging is enabled.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.sugar.Sync()
}
