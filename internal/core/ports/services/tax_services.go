package services

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
)

// TaxSvcFacade defines tax assessment operations
type TaxSvcFacade interface {
	// AssessBusiness estimates the tax of a stored business over a period.
	// It returns apperrors.ErrTaxNotEnabled when the business has not opted in.
	AssessBusiness(ctx context.Context, businessID, userID string, period domain.Period, rulesetVersion string) (*domain.BusinessAssessment, error)

	// Preview estimates tax for ad-hoc figures without touching storage.
	Preview(ctx context.Context, req dto.TaxPreviewRequest) (*domain.AssessmentResult, error)

	// ListRulesets describes the rulesets that can be applied.
	ListRulesets(ctx context.Context) dto.ListRulesetsResponse
}
