package dto

import (
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRevenueRequest defines the data needed to record a sale or a customer refund.
type CreateRevenueRequest struct {
	Amount      domain.Amount   `json:"amount"`
	FlowType    domain.FlowType `json:"flowType" binding:"omitempty,flow_type"` // in = sale (default), out = refund
	Description string          `json:"description" binding:"max=500"`
	EntryDate   time.Time       `json:"entryDate" binding:"required"`
}

// RevenueEntryResponse defines the data returned for a revenue entry.
type RevenueEntryResponse struct {
	EntryID     string          `json:"entryID"`
	Amount      decimal.Decimal `json:"amount"`
	FlowType    domain.FlowType `json:"flowType"`
	Description string          `json:"description"`
	EntryDate   time.Time       `json:"entryDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListRevenueResponse wraps revenue entries with their net total.
type ListRevenueResponse struct {
	FromDate   string                 `json:"fromDate"`
	ToDate     string                 `json:"toDate"`
	Entries    []RevenueEntryResponse `json:"entries"`
	NetRevenue decimal.Decimal        `json:"netRevenue"`
}

// ToRevenueEntryResponse converts a domain.RevenueEntry to RevenueEntryResponse DTO
func ToRevenueEntryResponse(e *domain.RevenueEntry) RevenueEntryResponse {
	return RevenueEntryResponse{
		EntryID:     e.EntryID,
		Amount:      e.Amount,
		FlowType:    e.FlowType,
		Description: e.Description,
		EntryDate:   e.EntryDate,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListRevenueResponse converts revenue entries to ListRevenueResponse DTO
func ToListRevenueResponse(entries []domain.RevenueEntry, net decimal.Decimal, period domain.Period) *ListRevenueResponse {
	res := &ListRevenueResponse{
		FromDate:   period.From.Format(DateLayout),
		ToDate:     period.To.Format(DateLayout),
		Entries:    make([]RevenueEntryResponse, len(entries)),
		NetRevenue: net,
	}
	for i := range entries {
		res.Entries[i] = ToRevenueEntryResponse(&entries[i])
	}
	return res
}
