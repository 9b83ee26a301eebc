package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the [Logger] interface by delegating to a zap
// SugaredLogger. The args are loosely typed key-value pairs, as accepted by
// [zap.SugaredLogger.Debugw].
//
// zap has no trace level, so trace records are written at the debug level.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger returns a new [ZapLogger].
// It will panic if the logger is nil.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		panic("nil logger")
	}
	return &ZapLogger{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// Trace logs at the debug level.
func (l *ZapLogger) Trace(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Debug logs at the debug level.
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info logs at the info level.
func (l *ZapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn logs at the warn level.
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error logs at the error level.
func (l *ZapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Enabled reports whether the underlying core handles records at the given
// level.
func (l *ZapLogger) Enabled(level Level) bool {
	if level >= LevelOff {
		return false
	}
	return l.sugar.Desugar().Core().Enabled(zapLevel(level))
}

// Sync flushes any buffered records.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

func zapLevel(level Level) zapcore.Level {
	switch {
	case level < LevelInfo:
		return zapcore.DebugLevel
	case level < LevelWarn:
		return zapcore.InfoLevel
	case level < LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
