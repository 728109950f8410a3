package accounting

import (
	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NonNegative clamps negative amounts to zero. Malformed amounts already decode to zero,
// so this is the only sanitising an amount needs before it is summed.
func NonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// SignedOutflow applies the sign convention for spending:
// FlowOut (money paid) -> Positive (+)
// FlowIn (refund received) -> Negative (-)
func SignedOutflow(flow domain.FlowType, amount decimal.Decimal) decimal.Decimal {
	amount = NonNegative(amount)
	if flow.Normalize() == domain.FlowIn {
		return amount.Neg()
	}
	return amount
}

// SignedInflow applies the sign convention for revenue:
// FlowIn (sale) -> Positive (+)
// FlowOut (refund paid to a customer) -> Negative (-)
func SignedInflow(flow domain.FlowType, amount decimal.Decimal) decimal.Decimal {
	return SignedOutflow(flow, amount).Neg()
}

// NetRevenue sums revenue entries and floors the total at zero.
func NetRevenue(entries []domain.RevenueEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(SignedInflow(e.FlowType, e.Amount))
	}
	return NonNegative(sum)
}
