package mapping

import (
	"database/sql"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		BusinessID:  d.BusinessID,
		Amount:      d.Amount.Decimal,
		ExpenseType: string(d.ExpenseType),
		FlowType:    string(d.FlowType),
		Category:    sql.NullString{String: d.Category, Valid: d.Category != ""},
		TaxCategory: sql.NullString{String: d.TaxCategory, Valid: d.TaxCategory != ""},
		Description: d.Description,
		ExpenseDate: d.ExpenseDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		BusinessID:  m.BusinessID,
		Description: m.Description,
		ExpenseDate: m.ExpenseDate,
		ExpenseRecord: domain.ExpenseRecord{
			Amount:      domain.NewAmount(m.Amount),
			ExpenseType: domain.ExpenseType(m.ExpenseType),
			FlowType:    domain.FlowType(m.FlowType),
			Category:    m.Category.String,
			TaxCategory: m.TaxCategory.String,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToExpenseRecords projects persisted expenses onto the records the tax engine consumes.
func ToExpenseRecords(expenses []domain.Expense) []domain.ExpenseRecord {
	recs := make([]domain.ExpenseRecord, len(expenses))
	for i := range expenses {
		recs[i] = expenses[i].ExpenseRecord
	}
	return recs
}

// ToModelRevenueEntry converts a domain RevenueEntry to a model RevenueEntry
func ToModelRevenueEntry(d domain.RevenueEntry) models.RevenueEntry {
	return models.RevenueEntry{
		EntryID:     d.EntryID,
		BusinessID:  d.BusinessID,
		Amount:      d.Amount,
		FlowType:    string(d.FlowType),
		Description: d.Description,
		EntryDate:   d.EntryDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRevenueEntry converts a model RevenueEntry to a domain RevenueEntry
func ToDomainRevenueEntry(m models.RevenueEntry) domain.RevenueEntry {
	return domain.RevenueEntry{
		EntryID:     m.EntryID,
		BusinessID:  m.BusinessID,
		Amount:      m.Amount,
		FlowType:    domain.FlowType(m.FlowType),
		Description: m.Description,
		EntryDate:   m.EntryDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRevenueEntrySlice converts a slice of model RevenueEntries to a slice of domain RevenueEntries
func ToDomainRevenueEntrySlice(ms []models.RevenueEntry) []domain.RevenueEntry {
	ds := make([]domain.RevenueEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRevenueEntry(m)
	}
	return ds
}
