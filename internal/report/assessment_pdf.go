// Package report renders tax assessments as downloadable documents.
package report

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/utils"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	labelWidth = 110.0
	dateLayout = "2 January 2006"
	disclaimer = "This is an estimate produced from the revenue and expenses recorded for the period. " +
		"It is not a filed return. Confirm figures with a tax professional before filing."
)

// AssessmentPDF builds a single-document PDF report for a business assessment.
type AssessmentPDF struct {
	pdf        *fpdf.Fpdf
	assessment *domain.BusinessAssessment
}

// RenderAssessmentPDF renders the assessment and returns the PDF bytes.
func RenderAssessmentPDF(assessment *domain.BusinessAssessment) ([]byte, error) {
	r := &AssessmentPDF{
		pdf:        fpdf.New("P", "mm", "A4", ""),
		assessment: assessment,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle("Tax assessment - "+assessment.BusinessName, true)

	r.pdf.AddPage()
	r.addHeader()
	r.addSummary()
	r.addBreakdown()
	r.addPersonalTip()
	r.addDisclaimer()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render assessment pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *AssessmentPDF) addHeader() {
	a := r.assessment

	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 77, 64)
	r.pdf.CellFormat(contentWidth, 12, "Companies Income Tax Estimate", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 12)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth, 7, a.BusinessName, "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(110, 110, 110)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Period: %s to %s",
		a.Period.From.Format(dateLayout), a.Period.To.Format(dateLayout)), "", 1, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Ruleset %s, generated %s",
		a.Result.RulesetVersion, a.GeneratedAt.Format(dateLayout)), "", 1, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("%d revenue entries, %d expenses",
		a.RevenueCount, a.ExpenseCount), "", 1, "L", false, 0, "")
	r.pdf.Ln(6)
}

func (r *AssessmentPDF) addSummary() {
	res := r.assessment.Result

	r.sectionTitle("Summary")
	r.pdf.SetFillColor(240, 247, 245)
	r.row("Tax band", string(res.TaxBand), true)
	r.row("Tax rate", utils.FormatPercent(res.Breakdown.TaxRate), false)
	r.row("Taxable income", utils.FormatNaira(res.TaxableIncome), true)
	r.row("Deductible expenses", utils.FormatNaira(res.DeductibleExpenses), false)

	r.pdf.SetFont("Arial", "B", 11)
	r.row("Estimated tax", utils.FormatNaira(res.EstimatedTax), true)
	r.row("Safe to spend", utils.FormatNaira(res.SafeToSpend), false)
	r.pdf.Ln(6)
}

func (r *AssessmentPDF) addBreakdown() {
	b := r.assessment.Result.Breakdown

	r.sectionTitle("Breakdown")
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Revenue (sales less refunds)", b.Revenue},
		{"Total deductible", b.TotalDeductible},
		{"Capital allowance", b.CapitalAllowance},
		{"Personal rent relief", b.PersonalRentRelief},
		{"Assessable profit", b.AssessableProfit},
		{"Gross tax", b.GrossTax},
		{"Withholding tax credit", b.WHTCredit},
		{"Consolidated relief (reported only)", b.ConsolidatedRelief},
		{"Total cash outflow", b.RealTotalOutflow},
	}
	r.pdf.SetFillColor(247, 247, 247)
	for i, row := range rows {
		r.row(row.label, utils.FormatNaira(row.value), i%2 == 0)
	}
	r.pdf.Ln(6)
}

func (r *AssessmentPDF) addPersonalTip() {
	tip := r.assessment.Result.PersonalTip
	if tip == nil {
		return
	}
	r.sectionTitle("Personal relief applied")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.MultiCell(contentWidth, 5, fmt.Sprintf(
		"%s relief of %s was deducted from assessable profit.",
		tip.Category, utils.FormatNaira(tip.ReliefAmount)), "", "L", false)
	r.pdf.Ln(4)
}

func (r *AssessmentPDF) addDisclaimer() {
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(contentWidth, 4, disclaimer, "", "L", false)
}

func (r *AssessmentPDF) sectionTitle(title string) {
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 77, 64)
	r.pdf.CellFormat(contentWidth, 8, title, "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *AssessmentPDF) row(label, value string, fill bool) {
	r.pdf.CellFormat(labelWidth, 6, label, "", 0, "L", fill, 0, "")
	r.pdf.CellFormat(contentWidth-labelWidth, 6, value, "", 1, "R", fill, 0, "")
}
