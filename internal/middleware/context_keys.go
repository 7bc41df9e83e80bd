package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	// UserIDKey is the key used to store the authenticated user's ID in
	// both the gin context and the request context.
	UserIDKey = "userID"

	loggerCtxKey contextKey = "logger"
)

// GetUserID retrieves the authenticated user's ID from the gin context.
// The boolean is false when the request was not authenticated.
func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from the context.
// Falls back to the default logger so callers never get nil.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
