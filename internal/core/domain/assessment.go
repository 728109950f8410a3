package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxBand is the CIT band a business falls into based on gross revenue.
type TaxBand string

const (
	BandExempt        TaxBand = "EXEMPT"
	BandMediumCompany TaxBand = "MEDIUM_COMPANY"
	BandLargeCompany  TaxBand = "LARGE_COMPANY"
)

// PersonalTip reports the personal-rent relief actually applied.
type PersonalTip struct {
	Category     string          `json:"category"`
	ReliefAmount decimal.Decimal `json:"reliefAmount"`
}

// AssessmentBreakdown is an audit snapshot of the intermediate values of an assessment.
type AssessmentBreakdown struct {
	Revenue            decimal.Decimal `json:"revenue"`
	AssessableProfit   decimal.Decimal `json:"assessableProfit"`
	TotalDeductible    decimal.Decimal `json:"totalDeductible"`
	TaxRate            decimal.Decimal `json:"taxRate"`
	CapitalAllowance   decimal.Decimal `json:"capitalAllowance"`
	ConsolidatedRelief decimal.Decimal `json:"consolidatedRelief"`
	PersonalRentRelief decimal.Decimal `json:"personalRentRelief"`
	GrossTax           decimal.Decimal `json:"grossTax"`
	WHTCredit          decimal.Decimal `json:"whtCredit"`
	RealTotalOutflow   decimal.Decimal `json:"realTotalOutflow"`
}

// AssessmentResult is the output of a single tax assessment.
type AssessmentResult struct {
	RulesetVersion     string              `json:"rulesetVersion"`
	TaxBand            TaxBand             `json:"taxBand"`
	TaxableIncome      decimal.Decimal     `json:"taxableIncome"`
	DeductibleExpenses decimal.Decimal     `json:"deductibleExpenses"`
	EstimatedTax       decimal.Decimal     `json:"estimatedTax"`
	SafeToSpend        decimal.Decimal     `json:"safeToSpend"`
	PersonalTip        *PersonalTip        `json:"personalTip"`
	Breakdown          AssessmentBreakdown `json:"breakdown"`
}

// BusinessAssessment is an assessment of a stored business over a period.
type BusinessAssessment struct {
	BusinessID   string           `json:"businessID"`
	BusinessName string           `json:"businessName"`
	Period       Period           `json:"period"`
	RevenueCount int              `json:"revenueCount"`
	ExpenseCount int              `json:"expenseCount"`
	GeneratedAt  time.Time        `json:"generatedAt"`
	Result       AssessmentResult `json:"result"`
}
