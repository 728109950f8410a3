package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock BusinessRepository ---
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	var b *domain.Business
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Business)
	}
	return b, args.Error(1)
}

func (m *MockBusinessRepository) ListBusinessesByOwner(ctx context.Context, ownerID string) ([]domain.Business, error) {
	args := m.Called(ctx, ownerID)
	var bs []domain.Business
	if args.Get(0) != nil {
		bs = args.Get(0).([]domain.Business)
	}
	return bs, args.Error(1)
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) UpdateTaxSettings(ctx context.Context, businessID string, settings domain.TaxSettings, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, businessID, settings, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, businessID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, businessID, expenseID)
	var e *domain.Expense
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Expense)
	}
	return e, args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, businessID string, period domain.Period, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, businessID, period, limit, nextToken)
	var es []domain.Expense
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.Expense)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return es, next, args.Error(2)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, businessID, expenseID string) error {
	args := m.Called(ctx, businessID, expenseID)
	return args.Error(0)
}

// --- Mock RevenueRepository ---
type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) ListRevenueEntries(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueEntry, error) {
	args := m.Called(ctx, businessID, period)
	var es []domain.RevenueEntry
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.RevenueEntry)
	}
	return es, args.Error(1)
}

func (m *MockRevenueRepository) SaveRevenueEntry(ctx context.Context, entry domain.RevenueEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock AssessmentInputReader ---
type MockAssessmentInputReader struct {
	mock.Mock
}

func (m *MockAssessmentInputReader) LoadAssessmentInputs(ctx context.Context, businessID string, period domain.Period) ([]domain.RevenueEntry, []domain.Expense, error) {
	args := m.Called(ctx, businessID, period)
	var rev []domain.RevenueEntry
	if args.Get(0) != nil {
		rev = args.Get(0).([]domain.RevenueEntry)
	}
	var exp []domain.Expense
	if args.Get(1) != nil {
		exp = args.Get(1).([]domain.Expense)
	}
	return rev, exp, args.Error(2)
}

// --- Mock EventTracker ---
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}

// --- Mock BusinessAuthorizer ---
type MockBusinessAuthorizer struct {
	mock.Mock
}

func (m *MockBusinessAuthorizer) AuthorizeOwner(ctx context.Context, userID, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, userID, businessID)
	var b *domain.Business
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Business)
	}
	return b, args.Error(1)
}
