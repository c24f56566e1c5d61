// Package tracelog provides a nil-safe structured logger for dart's
// build path, grounded on forestrie-go-merklelog/massifs' package-level
// logger.Sugar.Debugf idiom.
package tracelog

import "go.uber.org/zap"

// Logger wraps a zap sugared logger. A nil *Logger, or one constructed
// with Nop, discards everything, so callers that don't care about build
// diagnostics can pass nil without guarding every call site.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps an existing sugared logger.
func New(sugar *zap.SugaredLogger) *Logger {
	return &Logger{sugar: sugar}
}

// Nop returns a Logger that discards everything it's given.
func Nop() *Logger {
	return &Logger{}
}

// With returns a derived Logger with key/value attached to every
// subsequent log entry.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil || l.sugar == nil {
		return Nop()
	}
	return &Logger{sugar: l.sugar.With(key, value)}
}

func (l *Logger) Debugf(template string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Debugf(template, args...)
}

func (l *Logger) Errorf(template string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Errorf(template, args...)
}
