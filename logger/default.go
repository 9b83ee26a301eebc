package logger

import "sync/atomic"

type loggerValue struct {
	logger Logger
}

var defaultLogger atomic.Pointer[loggerValue]

func init() {
	defaultLogger.Store(&loggerValue{logger: NoOpLogger{}})
}

// Default returns the package Logger. Records are discarded until
// [SetDefault] is called.
func Default() Logger {
	return defaultLogger.Load().logger
}

// SetDefault makes l the package Logger. A nil l restores the no-op logger.
func SetDefault(l Logger) {
	if l == nil {
		l = NoOpLogger{}
	}
	defaultLogger.Store(&loggerValue{logger: l})
}

// leveled is implemented by loggers that can report their minimum level.
type leveled interface {
	Enabled(level Level) bool
}

// Enabled reports whether the package Logger handles records at the given
// level. Loggers that cannot tell are assumed to handle every level.
func Enabled(level Level) bool {
	switch l := Default().(type) {
	case NoOpLogger, *NoOpLogger:
		return false
	case leveled:
		return l.Enabled(level)
	default:
		return true
	}
}

// Trace logs at LevelTrace using the package Logger.
func Trace(msg string, args ...any) {
	Default().Trace(msg, args...)
}

// Debug logs at LevelDebug using the package Logger.
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs at LevelInfo using the package Logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn logs at LevelWarn using the package Logger.
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error logs at LevelError using the package Logger.
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}
