package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	BusinessID  string          `db:"business_id"`
	Amount      decimal.Decimal `db:"amount"`
	ExpenseType string          `db:"expense_type"`
	FlowType    string          `db:"flow_type"`
	Category    sql.NullString  `db:"category"`
	TaxCategory sql.NullString  `db:"tax_category"`
	Description string          `db:"description"`
	ExpenseDate time.Time       `db:"expense_date"`
	AuditFields
}

// RevenueEntry is a row of the revenue_entries table.
type RevenueEntry struct {
	EntryID     string          `db:"entry_id"`
	BusinessID  string          `db:"business_id"`
	Amount      decimal.Decimal `db:"amount"`
	FlowType    string          `db:"flow_type"`
	Description string          `db:"description"`
	EntryDate   time.Time       `db:"entry_date"`
	AuditFields
}
