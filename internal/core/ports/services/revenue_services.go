package services

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
)

// RevenueSvcFacade defines revenue ledger operations
type RevenueSvcFacade interface {
	// RecordRevenue records a sale or a customer refund.
	RecordRevenue(ctx context.Context, businessID string, req dto.CreateRevenueRequest, userID string) (*domain.RevenueEntry, error)

	// ListRevenue returns the entries in a period together with their net total.
	ListRevenue(ctx context.Context, businessID, userID string, period domain.Period) (*dto.ListRevenueResponse, error)
}
