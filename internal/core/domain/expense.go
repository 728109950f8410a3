package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ExpenseType indicates whether an expense was incurred by the business or by the owner personally.
type ExpenseType string

const (
	ExpenseBusiness ExpenseType = "business"
	ExpensePersonal ExpenseType = "personal"
)

// Normalize returns the effective expense type. Blank means business; anything
// unrecognised is treated as personal so it never reaches a deduction bucket.
func (t ExpenseType) Normalize() ExpenseType {
	switch strings.ToLower(strings.TrimSpace(string(t))) {
	case "", string(ExpenseBusiness):
		return ExpenseBusiness
	default:
		return ExpensePersonal
	}
}

// FlowType indicates the direction of cash for an expense or revenue entry.
type FlowType string

const (
	FlowOut FlowType = "out"
	FlowIn  FlowType = "in"
)

// Normalize returns FlowIn only for an explicit "in"; everything else is an outflow.
func (f FlowType) Normalize() FlowType {
	if strings.EqualFold(strings.TrimSpace(string(f)), string(FlowIn)) {
		return FlowIn
	}
	return FlowOut
}

// Amount is a monetary value that decodes leniently: a value that is not a
// number (or is null) decodes to zero instead of failing the whole document.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromInt is a convenience constructor used mostly by tests and seed data.
func AmountFromInt(v int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(v)}
}

// ParseAmount parses s, returning zero for anything malformed.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{Decimal: decimal.Zero}
	}
	return Amount{Decimal: d}
}

// UnmarshalJSON accepts JSON numbers and numeric strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{Decimal: decimal.Zero}
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	*a = ParseAmount(string(data))
	return nil
}

// UnmarshalYAML accepts YAML scalars in the same lenient way.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*a = Amount{Decimal: decimal.Zero}
		return nil
	}
	*a = ParseAmount(node.Value)
	return nil
}

// ExpenseRecord is a single expense line as consumed by the tax engine.
type ExpenseRecord struct {
	Amount      Amount      `json:"amount" yaml:"amount"`
	ExpenseType ExpenseType `json:"expenseType" yaml:"expenseType"`
	FlowType    FlowType    `json:"flowType" yaml:"flowType"`
	Category    string      `json:"category,omitempty" yaml:"category,omitempty"`
	TaxCategory string      `json:"taxCategory,omitempty" yaml:"taxCategory,omitempty"`
}

// Expense is a persisted expense belonging to a business.
type Expense struct {
	ExpenseID   string    `json:"expenseID"`
	BusinessID  string    `json:"businessID"`
	Description string    `json:"description"`
	ExpenseDate time.Time `json:"expenseDate"`
	ExpenseRecord
	AuditFields
}

// RevenueEntry is a persisted sale (flow in) or customer refund (flow out).
type RevenueEntry struct {
	EntryID     string          `json:"entryID"`
	BusinessID  string          `json:"businessID"`
	Amount      decimal.Decimal `json:"amount"`
	FlowType    FlowType        `json:"flowType"`
	Description string          `json:"description"`
	EntryDate   time.Time       `json:"entryDate"`
	AuditFields
}
