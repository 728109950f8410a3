package dto

import (
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
// Amount decodes leniently: a malformed value is stored as zero.
type CreateExpenseRequest struct {
	Amount      domain.Amount      `json:"amount"`
	ExpenseType domain.ExpenseType `json:"expenseType" binding:"omitempty,expense_type"`
	FlowType    domain.FlowType    `json:"flowType" binding:"omitempty,flow_type"`
	Category    string             `json:"category" binding:"max=100"`
	TaxCategory string             `json:"taxCategory" binding:"max=100"`
	Description string             `json:"description" binding:"max=500"`
	ExpenseDate time.Time          `json:"expenseDate" binding:"required"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	FromDate  string  `form:"fromDate"`
	ToDate    string  `form:"toDate"`
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string             `json:"expenseID"`
	BusinessID  string             `json:"businessID"`
	Amount      decimal.Decimal    `json:"amount"`
	ExpenseType domain.ExpenseType `json:"expenseType"`
	FlowType    domain.FlowType    `json:"flowType"`
	Category    string             `json:"category,omitempty"`
	TaxCategory string             `json:"taxCategory,omitempty"`
	Description string             `json:"description"`
	ExpenseDate time.Time          `json:"expenseDate"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy"`
}

// ListExpensesResponse wraps one page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		BusinessID:  e.BusinessID,
		Amount:      e.Amount.Decimal,
		ExpenseType: e.ExpenseType,
		FlowType:    e.FlowType,
		Category:    e.Category,
		TaxCategory: e.TaxCategory,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToListExpensesResponse converts a page of domain.Expense to ListExpensesResponse DTO
func ToListExpensesResponse(expenses []domain.Expense, nextToken *string) *ListExpensesResponse {
	res := &ListExpensesResponse{Expenses: make([]ExpenseResponse, len(expenses)), NextToken: nextToken}
	for i := range expenses {
		res.Expenses[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
