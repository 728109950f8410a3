package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/core/taxengine"
	"github.com/SscSPs/sme_tax_estimator/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssessment() *domain.BusinessAssessment {
	result := taxengine.Calculate(decimal.NewFromInt(80_000_000), []domain.ExpenseRecord{
		{Amount: domain.AmountFromInt(12_000_000), ExpenseType: domain.ExpenseBusiness, Category: "OPERATING_EXPENSE"},
		{Amount: domain.AmountFromInt(3_000_000), ExpenseType: domain.ExpensePersonal, Category: "PERSONAL_HOME_RENT"},
	}, domain.BusinessProfile{})

	return &domain.BusinessAssessment{
		BusinessID:   "b-1",
		BusinessName: "Ikeja Tailoring",
		Period: domain.Period{
			From: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		RevenueCount: 40,
		ExpenseCount: 2,
		GeneratedAt:  time.Date(2027, time.January, 2, 10, 0, 0, 0, time.UTC),
		Result:       result,
	}
}

func TestRenderAssessmentPDF(t *testing.T) {
	a := sampleAssessment()
	require.NotNil(t, a.Result.PersonalTip)

	out, err := report.RenderAssessmentPDF(a)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderAssessmentPDF_ZeroRevenue(t *testing.T) {
	a := sampleAssessment()
	a.Result = taxengine.Calculate(decimal.Zero, nil, domain.BusinessProfile{})

	out, err := report.RenderAssessmentPDF(a)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
