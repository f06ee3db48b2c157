package services

import (
	"context"
	"log/slog"

	"github.com/finflow/family_finance_app/internal/middleware"
)

// BaseService carries the logging helpers shared by every service. Services
// embed it so their handlers of record read the request-scoped logger off the
// context instead of holding their own.
type BaseService struct{}

func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
		return logger
	}
	return slog.Default()
}

// LogError logs err under the standard "error" attribute followed by any
// extra key/value attrs.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, attrs ...any) {
	args := append([]any{slog.String("error", err.Error())}, attrs...)
	s.logger(ctx).Error(msg, args...)
}

// LogInfo logs an informational message on the request-scoped logger.
func (s *BaseService) LogInfo(ctx context.Context, msg string, attrs ...any) {
	s.logger(ctx).Info(msg, attrs...)
}
