package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
)

// BusinessReader defines read operations for business data
type BusinessReader interface {
	// FindBusinessByID retrieves a business by ID. Returns apperrors.ErrNotFound if missing.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinessesByOwner retrieves all businesses owned by a user.
	ListBusinessesByOwner(ctx context.Context, ownerID string) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business data
type BusinessWriter interface {
	// SaveBusiness persists a new business.
	SaveBusiness(ctx context.Context, business domain.Business) error

	// UpdateTaxSettings replaces the tax settings of a business.
	UpdateTaxSettings(ctx context.Context, businessID string, settings domain.TaxSettings, updatedBy string, updatedAt time.Time) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
