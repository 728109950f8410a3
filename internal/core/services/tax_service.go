package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/apperrors"
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/core/taxengine"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/accounting"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/mapping"
)

// EventTaxAssessmentGenerated is emitted after every stored-business assessment.
const EventTaxAssessmentGenerated = "tax_assessment_generated"

type taxService struct {
	BaseService
	inputs  portsrepo.AssessmentInputReader
	engine  *taxengine.Engine
	tracker portssvc.EventTracker
	now     func() time.Time
}

// TaxServiceOption is a functional option for configuring the tax service
type TaxServiceOption func(*taxService)

// WithTaxBusinessAuthorizer sets the ownership check for stored-business assessments.
func WithTaxBusinessAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) TaxServiceOption {
	return func(s *taxService) {
		s.BusinessAuthorizer = authorizer
	}
}

// WithEventTracker sets where assessment events are sent.
func WithEventTracker(tracker portssvc.EventTracker) TaxServiceOption {
	return func(s *taxService) {
		s.tracker = tracker
	}
}

// WithTaxEngine replaces the engine built over the embedded rulesets.
func WithTaxEngine(engine *taxengine.Engine) TaxServiceOption {
	return func(s *taxService) {
		s.engine = engine
	}
}

// WithTaxClock overrides the clock used for timestamps.
func WithTaxClock(now func() time.Time) TaxServiceOption {
	return func(s *taxService) {
		s.now = now
	}
}

// NewTaxService creates a new tax service with the provided options
func NewTaxService(inputs portsrepo.AssessmentInputReader, options ...TaxServiceOption) portssvc.TaxSvcFacade {
	svc := &taxService{
		inputs: inputs,
		engine: taxengine.NewDefault(),
		now:    time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

func (s *taxService) AssessBusiness(ctx context.Context, businessID, userID string, period domain.Period, rulesetVersion string) (*domain.BusinessAssessment, error) {
	business, err := s.AuthorizeOwner(ctx, userID, businessID)
	if err != nil {
		return nil, err
	}
	if !business.TaxSettings.IsEnabled {
		return nil, apperrors.ErrTaxNotEnabled
	}

	revenueEntries, expenses, err := s.inputs.LoadAssessmentInputs(ctx, businessID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assessment inputs", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to load assessment inputs: %w", err)
	}

	revenue := accounting.NetRevenue(revenueEntries)
	result, err := s.engine.CalculateWithRuleset(rulesetVersion, revenue, mapping.ToExpenseRecords(expenses), business.BusinessProfile)
	if err != nil {
		return nil, s.rulesetError(err)
	}

	assessment := &domain.BusinessAssessment{
		BusinessID:   business.BusinessID,
		BusinessName: business.Name,
		Period:       period,
		RevenueCount: len(revenueEntries),
		ExpenseCount: len(expenses),
		GeneratedAt:  s.now().UTC(),
		Result:       result,
	}

	s.LogInfo(ctx, "Tax assessment generated",
		slog.String("business_id", businessID),
		slog.String("ruleset", result.RulesetVersion),
		slog.String("tax_band", string(result.TaxBand)),
		slog.Int("revenue_entries", len(revenueEntries)),
		slog.Int("expenses", len(expenses)))

	if s.tracker != nil {
		// Amounts stay out of analytics.
		s.tracker.Enqueue(userID, EventTaxAssessmentGenerated, map[string]any{
			"business_id":   businessID,
			"ruleset":       result.RulesetVersion,
			"tax_band":      string(result.TaxBand),
			"has_rent_tip":  result.PersonalTip != nil,
			"expense_count": len(expenses),
		})
	}
	return assessment, nil
}

func (s *taxService) Preview(ctx context.Context, req dto.TaxPreviewRequest) (*domain.AssessmentResult, error) {
	profile := domain.BusinessProfile{TaxSettings: req.TaxSettings.ToDomain()}
	result, err := s.engine.CalculateWithRuleset(req.RulesetVersion, req.Revenue.Decimal, req.Expenses, profile)
	if err != nil {
		return nil, s.rulesetError(err)
	}
	s.LogDebug(ctx, "Tax preview calculated",
		slog.String("ruleset", result.RulesetVersion),
		slog.Int("expenses", len(req.Expenses)))
	return &result, nil
}

func (s *taxService) ListRulesets(_ context.Context) dto.ListRulesetsResponse {
	reg := s.engine.Registry()
	res := dto.ListRulesetsResponse{Default: reg.DefaultVersion()}
	for _, version := range reg.Versions() {
		rs, err := reg.Get(version)
		if err != nil {
			continue
		}
		bands := make([]dto.TaxBandResponse, len(rs.Bands))
		for i, b := range rs.Bands {
			bands[i] = dto.TaxBandResponse{Band: b.Band, UpTo: b.UpTo, Rate: b.Rate}
		}
		res.Rulesets = append(res.Rulesets, dto.RulesetResponse{
			Version:              rs.Version,
			Description:          rs.Description,
			IsDefault:            rs.Version == res.Default,
			Bands:                bands,
			CapitalAllowanceRate: rs.CapitalAllowanceRate,
		})
	}
	return res
}

func (s *taxService) rulesetError(err error) error {
	if errors.Is(err, taxengine.ErrUnknownRuleset) {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return err
}
