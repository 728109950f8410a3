package repositories

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense of a business. Returns apperrors.ErrNotFound if missing.
	FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves one page of expenses in a period, newest first.
	// It returns the token for the next page, or nil when there are no more rows.
	ListExpenses(ctx context.Context, businessID string, period domain.Period, limit int, nextToken *string) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense. Returns apperrors.ErrNotFound if missing.
	DeleteExpense(ctx context.Context, businessID, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
