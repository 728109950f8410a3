package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	BusinessAuthorizer portssvc.BusinessAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner loads the business and checks the user owns it.
// It panics when no authorizer is wired.
func (s *BaseService) AuthorizeOwner(ctx context.Context, userID, businessID string) (*domain.Business, error) {
	if s.BusinessAuthorizer == nil {
		panic("services: BusinessAuthorizer not configured")
	}
	business, err := s.BusinessAuthorizer.AuthorizeOwner(ctx, userID, businessID)
	if err != nil {
		s.LogDebug(ctx, "Business access denied",
			slog.String("user_id", userID),
			slog.String("business_id", businessID),
			slog.String("reason", err.Error()))
		return nil, err
	}
	return business, nil
}
