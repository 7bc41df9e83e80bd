package services

import (
	"context"
	"log/slog"

	"github.com/mindnote-app/mindnote_backend/internal/middleware"
)

// BaseService provides common functionality shared by all services.
type BaseService struct{}

// GetLogger returns the request-scoped logger from the context.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with the request-scoped logger.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, args ...any) {
	logger := s.GetLogger(ctx)
	args = append(args, slog.Any("error", err))
	logger.Error(msg, args...)
}

// LogInfo logs an informational message with the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Info(msg, args...)
}

// LogDebug logs a debug message with the request-scoped logger.
func (s *BaseService) LogDebug(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).Debug(msg, args...)
}
