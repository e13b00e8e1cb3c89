package weblog

import (
	"context"
)

// nopLogger discards everything. Returned by FromContext when no logger is
// attached so callers never have to nil-check.
type nopLogger struct{}

func (nopLogger) Debug(...interface{})                 {}
func (nopLogger) Info(...interface{})                  {}
func (nopLogger) Warning(...interface{})               {}
func (nopLogger) Error(...interface{})                 {}
func (nopLogger) Critical(...interface{})              {}
func (nopLogger) Log(Level, ColorFunc, ...interface{}) {}

var nullLogger Logger = nopLogger{}

// WithContext returns a new context carrying the provided logger.
func WithContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextKey, logger)
}

// FromContext retrieves the logger from the context. If no logger is
// found, a nop logger is returned.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey).(Logger); ok {
			return logger
		}
	}

	return nullLogger
}

// Unexported new type so that our context key never collides with another.
type contextKeyType struct{}

// contextKey is the key used for the context to store the logger.
var contextKey = contextKeyType{}
