package dto

import (
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssessmentQueryParams defines query parameters for a stored-business assessment.
type AssessmentQueryParams struct {
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
	Ruleset  string `form:"ruleset"`
}

// TaxPreviewRequest is an ad-hoc assessment that is never persisted.
type TaxPreviewRequest struct {
	Revenue        domain.Amount          `json:"revenue"`
	Expenses       []domain.ExpenseRecord `json:"expenses"`
	TaxSettings    TaxSettingsRequest     `json:"taxSettings"`
	RulesetVersion string                 `json:"rulesetVersion"`
}

// AssessmentResponse is returned for a stored-business assessment.
type AssessmentResponse struct {
	BusinessID   string                  `json:"businessID"`
	BusinessName string                  `json:"businessName"`
	FromDate     string                  `json:"fromDate"`
	ToDate       string                  `json:"toDate"`
	RevenueCount int                     `json:"revenueCount"`
	ExpenseCount int                     `json:"expenseCount"`
	GeneratedAt  time.Time               `json:"generatedAt"`
	Assessment   domain.AssessmentResult `json:"assessment"`
}

// ToAssessmentResponse converts a domain.BusinessAssessment to AssessmentResponse DTO
func ToAssessmentResponse(a *domain.BusinessAssessment) AssessmentResponse {
	return AssessmentResponse{
		BusinessID:   a.BusinessID,
		BusinessName: a.BusinessName,
		FromDate:     a.Period.From.Format(DateLayout),
		ToDate:       a.Period.To.Format(DateLayout),
		RevenueCount: a.RevenueCount,
		ExpenseCount: a.ExpenseCount,
		GeneratedAt:  a.GeneratedAt,
		Assessment:   a.Result,
	}
}

// TaxBandResponse describes one revenue band of a ruleset.
type TaxBandResponse struct {
	Band domain.TaxBand   `json:"band"`
	UpTo *decimal.Decimal `json:"upTo,omitempty"`
	Rate decimal.Decimal  `json:"rate"`
}

// RulesetResponse describes a ruleset that can be applied.
type RulesetResponse struct {
	Version              string            `json:"version"`
	Description          string            `json:"description"`
	IsDefault            bool              `json:"isDefault"`
	Bands                []TaxBandResponse `json:"bands"`
	CapitalAllowanceRate decimal.Decimal   `json:"capitalAllowanceRate"`
}

// ListRulesetsResponse wraps the available rulesets.
type ListRulesetsResponse struct {
	Default  string            `json:"default"`
	Rulesets []RulesetResponse `json:"rulesets"`
}
