package services

import (
	"context"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	// ListExpenses returns one page of the business's expenses in a period.
	ListExpenses(ctx context.Context, businessID, userID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	// CreateExpense records an expense against a business.
	CreateExpense(ctx context.Context, businessID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)

	// DeleteExpense removes an expense from a business.
	DeleteExpense(ctx context.Context, businessID, expenseID, userID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
