// Package taxengine estimates Nigerian Companies Income Tax for a small or
// medium business from its revenue and expense records.
//
// The engine is a pure computation: it performs no I/O, holds no mutable state
// and never fails on a single malformed record. Bad amounts count as zero,
// unknown categories fall back to the ruleset's default bucket, and every
// intermediate value is clamped at zero before it is carried forward.
package taxengine

import (
	"strings"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	moneyPlaces        = 2
	defaultCategoryTag = "OPERATING_EXPENSE"
)

// Engine runs assessments against a registry of versioned rulesets.
// It is safe for concurrent use.
type Engine struct {
	registry *Registry
}

// New creates an engine over the given registry. A nil registry, or one whose
// default version does not resolve, is replaced by the embedded rulesets.
func New(registry *Registry) *Engine {
	if !registry.resolvable() {
		registry = DefaultRegistry()
	}
	return &Engine{registry: registry}
}

// NewDefault creates an engine over the embedded rulesets.
func NewDefault() *Engine {
	return New(DefaultRegistry())
}

// Registry exposes the rulesets the engine can apply.
func (e *Engine) Registry() *Registry {
	if e == nil || !e.registry.resolvable() {
		return DefaultRegistry()
	}
	return e.registry
}

// Calculate assesses with the registry's default ruleset.
func (e *Engine) Calculate(revenue decimal.Decimal, expenses []domain.ExpenseRecord, profile domain.BusinessProfile) domain.AssessmentResult {
	rs, err := e.Registry().Get("")
	if err != nil {
		rs, _ = DefaultRegistry().Get("")
	}
	return rs.Assess(revenue, expenses, profile)
}

// CalculateWithRuleset assesses with the named ruleset version.
func (e *Engine) CalculateWithRuleset(version string, revenue decimal.Decimal, expenses []domain.ExpenseRecord, profile domain.BusinessProfile) (domain.AssessmentResult, error) {
	rs, err := e.Registry().Get(version)
	if err != nil {
		return domain.AssessmentResult{}, err
	}
	return rs.Assess(revenue, expenses, profile), nil
}

// Calculate assesses with the default embedded ruleset.
func Calculate(revenue decimal.Decimal, expenses []domain.ExpenseRecord, profile domain.BusinessProfile) domain.AssessmentResult {
	return NewDefault().Calculate(revenue, expenses, profile)
}

// bucketTotals holds the net (out minus in) total per bucket, floored at zero.
type bucketTotals [bucketCount]decimal.Decimal

// classification is the result of stage 1. cashOutflow nets every non-WHT
// record across buckets before flooring, so a surplus refund in one bucket
// offsets cash spent in another.
type classification struct {
	totals      bucketTotals
	cashOutflow decimal.Decimal
}

func (t *bucketTotals) get(b Bucket) decimal.Decimal {
	return t[b]
}

// EffectiveCategory returns Category, else TaxCategory, else the generic operating-expense label.
func EffectiveCategory(rec domain.ExpenseRecord) string {
	if c := strings.TrimSpace(rec.Category); c != "" {
		return c
	}
	if c := strings.TrimSpace(rec.TaxCategory); c != "" {
		return c
	}
	return defaultCategoryTag
}

// Classify returns the bucket an expense record is routed to under this ruleset.
func (rs *Ruleset) Classify(rec domain.ExpenseRecord) Bucket {
	return rs.categoryRule(EffectiveCategory(rec)).For(rec.ExpenseType)
}

func (rs *Ruleset) classify(expenses []domain.ExpenseRecord) classification {
	var totals bucketTotals
	for i := range totals {
		totals[i] = decimal.Zero
	}
	cash := decimal.Zero
	for _, rec := range expenses {
		b := rs.Classify(rec)
		signed := accounting.SignedOutflow(rec.FlowType, rec.Amount.Decimal)
		totals[b] = totals[b].Add(signed)
		if b != BucketWHTCredit {
			cash = cash.Add(signed)
		}
	}
	for i := range totals {
		totals[i] = accounting.NonNegative(totals[i])
	}
	return classification{totals: totals, cashOutflow: accounting.NonNegative(cash)}
}

// Assess runs the full pipeline. The profile is accepted for future rules
// (pioneer status keyed on incorporation date); no current band reads it.
func (rs *Ruleset) Assess(revenue decimal.Decimal, expenses []domain.ExpenseRecord, _ domain.BusinessProfile) domain.AssessmentResult {
	revenue = accounting.NonNegative(revenue)
	if revenue.IsZero() {
		return rs.zeroResult()
	}

	// Stage 1: classification.
	classified := rs.classify(expenses)
	totals := classified.totals
	business := totals.get(BucketBusinessDeductible)
	capital := totals.get(BucketCapitalAsset)
	salary := totals.get(BucketSalaryPension)
	rent := totals.get(BucketPersonalRent)
	whtCredit := totals.get(BucketWHTCredit)

	// Stage 2: relief.
	capitalAllowance := accounting.NonNegative(capital.Mul(rs.CapitalAllowanceRate))
	consolidatedRelief := decimal.Zero
	if rs.ConsolidatedRelief.Enabled {
		consolidatedRelief = rs.ConsolidatedRelief.Floor.Add(revenue.Mul(rs.ConsolidatedRelief.RevenueRate))
	}
	rentCap := accounting.NonNegative(revenue.Mul(rs.PersonalRentRelief.RevenueCapRate))
	rentRelief := decimal.Min(rent, rentCap)
	totalDeductible := business.Add(salary).Add(capitalAllowance)

	// Stage 3: banding.
	band := rs.band(revenue)

	// Stage 4: assessment.
	assessable := revenue.Sub(totalDeductible).Sub(rentRelief)
	if rs.ConsolidatedRelief.Enabled && rs.ConsolidatedRelief.ApplyToTaxableIncome {
		assessable = assessable.Sub(consolidatedRelief)
	}
	assessable = accounting.NonNegative(assessable)
	taxable := assessable
	grossTax := taxable.Mul(band.Rate)
	estimatedTax := accounting.NonNegative(grossTax.Sub(whtCredit))

	// Stage 5: cash safety. A WHT credit is not a cash outflow.
	realOutflow := classified.cashOutflow
	safeToSpend := accounting.NonNegative(revenue.Sub(realOutflow).Sub(estimatedTax))

	var tip *domain.PersonalTip
	if rentRelief.IsPositive() {
		tip = &domain.PersonalTip{
			Category:     rs.PersonalRentRelief.TipCategory,
			ReliefAmount: money(rentRelief),
		}
	}

	return domain.AssessmentResult{
		RulesetVersion:     rs.Version,
		TaxBand:            band.Band,
		TaxableIncome:      money(taxable),
		DeductibleExpenses: money(totalDeductible),
		EstimatedTax:       money(estimatedTax),
		SafeToSpend:        money(safeToSpend),
		PersonalTip:        tip,
		Breakdown: domain.AssessmentBreakdown{
			Revenue:            money(revenue),
			AssessableProfit:   money(assessable),
			TotalDeductible:    money(totalDeductible),
			TaxRate:            band.Rate,
			CapitalAllowance:   money(capitalAllowance),
			ConsolidatedRelief: money(consolidatedRelief),
			PersonalRentRelief: money(rentRelief),
			GrossTax:           money(grossTax),
			WHTCredit:          money(whtCredit),
			RealTotalOutflow:   money(realOutflow),
		},
	}
}

// zeroResult is the assessment for a business with no revenue.
func (rs *Ruleset) zeroResult() domain.AssessmentResult {
	band := rs.band(decimal.Zero)
	zero := money(decimal.Zero)
	return domain.AssessmentResult{
		RulesetVersion:     rs.Version,
		TaxBand:            band.Band,
		TaxableIncome:      zero,
		DeductibleExpenses: zero,
		EstimatedTax:       zero,
		SafeToSpend:        zero,
		Breakdown: domain.AssessmentBreakdown{
			Revenue:            zero,
			AssessableProfit:   zero,
			TotalDeductible:    zero,
			TaxRate:            band.Rate,
			CapitalAllowance:   zero,
			ConsolidatedRelief: zero,
			PersonalRentRelief: zero,
			GrossTax:           zero,
			WHTCredit:          zero,
			RealTotalOutflow:   zero,
		},
	}
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}
