package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
	"github.com/SscSPs/sme_tax_estimator/internal/utils/accounting"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	now         func() time.Time
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseBusinessAuthorizer sets the ownership check used before every operation.
func WithExpenseBusinessAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) ExpenseServiceOption {
	return func(s *expenseService) {
		s.BusinessAuthorizer = authorizer
	}
}

// WithExpenseClock overrides the clock used for audit fields and default periods.
func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.now = now
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{expenseRepo: repo, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense stores the expense with normalised type and flow. Negative
// amounts are clamped to zero, matching how the tax engine reads them.
func (s *expenseService) CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if _, err := s.AuthorizeOwner(ctx, userID, businessID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		BusinessID:  businessID,
		Description: strings.TrimSpace(req.Description),
		ExpenseDate: truncateToDate(req.ExpenseDate),
		ExpenseRecord: domain.ExpenseRecord{
			Amount:      domain.NewAmount(accounting.NonNegative(req.Amount.Decimal)),
			ExpenseType: req.ExpenseType.Normalize(),
			FlowType:    req.FlowType.Normalize(),
			Category:    strings.TrimSpace(req.Category),
			TaxCategory: strings.TrimSpace(req.TaxCategory),
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("business_id", businessID),
		slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, businessID, userID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	if _, err := s.AuthorizeOwner(ctx, userID, businessID); err != nil {
		return nil, err
	}

	period, err := dto.ParsePeriod(params.FromDate, params.ToDate, s.now())
	if err != nil {
		return nil, err
	}

	expenses, next, err := s.expenseRepo.ListExpenses(ctx, businessID, period, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return dto.ToListExpensesResponse(expenses, next), nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, businessID, expenseID, userID string) error {
	if _, err := s.AuthorizeOwner(ctx, userID, businessID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, businessID, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.LogInfo(ctx, "Expense deleted",
		slog.String("business_id", businessID),
		slog.String("expense_id", expenseID))
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
