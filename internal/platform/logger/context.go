package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type for context keys defined by this package,
// preventing collisions with keys defined elsewhere.
type contextKey struct{}

// loggerKey is the context key under which a *slog.Logger is stored.
var loggerKey = contextKey{}

// WithLogger returns a copy of the context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger stored in the context, falling back to
// slog.Default() when the context carries none. It never returns nil.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in the context, falling
// back to the provided default. When the default is also nil it behaves like
// FromContext.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
