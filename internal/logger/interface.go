package logger

import "context"

// Logger is the logging interface used across the pipeline. Implementations
// must be safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// WithField returns a logger that attaches the field to every entry.
	WithField(key string, value interface{}) Logger
}
