package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExpenses = `
- amount: "9,000,000"
  expenseType: business
  flowType: out
  category: OPERATING_EXPENSE
- amount: not-a-number
  expenseType: business
  category: COST_OF_GOODS
`

func runTaxcalc(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeExpenses(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expenses.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAssess_Text(t *testing.T) {
	out, err := runTaxcalc(t, "", "assess", "--revenue", "60,000,000", "--expenses", writeExpenses(t, sampleExpenses))
	require.NoError(t, err)

	assert.Contains(t, out, "ng-cit-v1.0")
	assert.Contains(t, out, "MEDIUM_COMPANY")
	assert.Contains(t, out, "NGN 51,000,000.00")
	assert.Contains(t, out, "NGN 12,750,000.00")
	assert.Contains(t, out, "NGN 38,250,000.00")
	assert.NotContains(t, out, "Tip")
}

func TestAssess_JSONFromStdinWithRuleset(t *testing.T) {
	stdin := `[{"amount": 9000000, "expenseType": "business", "flowType": "out"}]`
	out, err := runTaxcalc(t, stdin, "assess", "--revenue", "60000000", "--expenses", "-", "--ruleset", "ng-cit-v0.9", "-o", "json")
	require.NoError(t, err)

	var res struct {
		RulesetVersion string          `json:"rulesetVersion"`
		TaxBand        string          `json:"taxBand"`
		EstimatedTax   decimal.Decimal `json:"estimatedTax"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "ng-cit-v0.9", res.RulesetVersion)
	assert.Equal(t, "MEDIUM_COMPANY", res.TaxBand)
	assert.True(t, decimal.RequireFromString("10200000").Equal(res.EstimatedTax), "got %s", res.EstimatedTax)
}

func TestAssess_NoExpenseFile(t *testing.T) {
	out, err := runTaxcalc(t, "", "assess", "--revenue", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "EXEMPT")
	assert.Contains(t, out, "NGN 0.00")
}

func TestAssess_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing revenue", args: []string{"assess"}},
		{name: "bad revenue", args: []string{"assess", "--revenue", "lots"}},
		{name: "unknown ruleset", args: []string{"assess", "--revenue", "1", "--ruleset", "ng-cit-v7"}},
		{name: "unknown output", args: []string{"assess", "--revenue", "1", "-o", "xml"}},
		{name: "missing file", args: []string{"assess", "--revenue", "1", "-e", filepath.Join(t.TempDir(), "nope.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runTaxcalc(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRulesets(t *testing.T) {
	out, err := runTaxcalc(t, "", "rulesets")
	require.NoError(t, err)
	assert.Contains(t, out, "* ng-cit-v1.0")
	assert.Contains(t, out, "  ng-cit-v0.9")
}
