package repositories

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
)

// AssessmentInputReader loads everything an assessment needs from a single consistent snapshot.
type AssessmentInputReader interface {
	// LoadAssessmentInputs returns the revenue entries and expenses of a business in a period.
	LoadAssessmentInputs(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueEntry, []domain.Expense, error)
}
