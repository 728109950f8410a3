package repositories

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
)

// RevenueReader defines read operations for revenue entries
type RevenueReader interface {
	// ListRevenueEntries retrieves the revenue entries of a business in a period, oldest first.
	ListRevenueEntries(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueEntry, error)
}

// RevenueWriter defines write operations for revenue entries
type RevenueWriter interface {
	// SaveRevenueEntry persists a new revenue entry.
	SaveRevenueEntry(ctx context.Context, entry domain.RevenueEntry) error
}

// RevenueRepositoryFacade combines all revenue-related repository interfaces
type RevenueRepositoryFacade interface {
	RevenueReader
	RevenueWriter
}
