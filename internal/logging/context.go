// internal/logging/context.go
package logging

import (
	"context"
	"log/slog"
)

// logCtxKey is the context key that carries a request-scoped logger.
type logCtxKey struct{}

// NewContext returns a copy of ctx carrying the given logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger retrieves the slog.Logger from the context, falling back to
// slog.Default when none was attached.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
