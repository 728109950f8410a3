package services

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
)

// BusinessReaderSvc defines read operations for businesses
type BusinessReaderSvc interface {
	// GetBusiness returns a business the user owns.
	GetBusiness(ctx context.Context, businessID, userID string) (*domain.Business, error)

	// ListBusinesses returns every business the user owns.
	ListBusinesses(ctx context.Context, userID string) ([]domain.Business, error)
}

// BusinessWriterSvc defines write operations for businesses
type BusinessWriterSvc interface {
	// CreateBusiness creates a business owned by the user.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error)

	// UpdateTaxSettings replaces the tax settings of a business the user owns.
	UpdateTaxSettings(ctx context.Context, businessID string, req dto.UpdateTaxSettingsRequest, userID string) (*domain.Business, error)
}

// BusinessAuthorizerSvc defines ownership checks used by the other services.
type BusinessAuthorizerSvc interface {
	// AuthorizeOwner returns the business when userID owns it.
	// It returns apperrors.ErrNotFound for a missing business and apperrors.ErrForbidden otherwise.
	AuthorizeOwner(ctx context.Context, userID, businessID string) (*domain.Business, error)
}

// BusinessSvcFacade combines all business-related service interfaces
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
	BusinessAuthorizerSvc
}
