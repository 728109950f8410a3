package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/sme_tax_estimator/internal/core/domain"
	"github.com/SscSPs/sme_tax_estimator/internal/core/taxengine"
	"github.com/SscSPs/sme_tax_estimator/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func assessCmd() *cobra.Command {
	var (
		revenue      string
		expensesPath string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Estimate tax for a revenue figure and an expense file",
		Example: `  taxcalc assess --revenue 60,000,000 --expenses expenses.yaml
  taxcalc assess --revenue 30000000 --expenses - --ruleset ng-cit-v0.9 --output json < expenses.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rev, err := parseRevenue(revenue)
			if err != nil {
				return err
			}

			var records []domain.ExpenseRecord
			if expensesPath != "" {
				records, err = loadExpenses(expensesPath, cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			result, err := taxengine.NewDefault().CalculateWithRuleset(viper.GetString("ruleset"), rev, records, domain.BusinessProfile{})
			if err != nil {
				return err
			}

			switch strings.ToLower(output) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "text", "":
				return writeText(cmd.OutOrStdout(), result)
			default:
				return fmt.Errorf("unknown output format %q (want json or text)", output)
			}
		},
	}

	cmd.Flags().StringVar(&revenue, "revenue", "", "gross revenue for the period, commas allowed")
	cmd.Flags().StringVarP(&expensesPath, "expenses", "e", "", "YAML or JSON file of expense records, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	_ = cmd.MarkFlagRequired("revenue")

	return cmd
}

// parseRevenue is strict: unlike expense amounts, a revenue typo must not become zero.
func parseRevenue(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --revenue %q: %w", raw, err)
	}
	return d, nil
}

func loadExpenses(path string, stdin io.Reader) ([]domain.ExpenseRecord, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	// JSON is a subset of YAML, so one decoder covers both formats.
	var records []domain.ExpenseRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse expenses %s: %w", path, err)
	}
	return records, nil
}

func writeText(out io.Writer, res domain.AssessmentResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Ruleset", res.RulesetVersion},
		{"Tax band", string(res.TaxBand)},
		{"Revenue", utils.FormatNaira(res.Breakdown.Revenue)},
		{"Deductible expenses", utils.FormatNaira(res.DeductibleExpenses)},
		{"Capital allowance", utils.FormatNaira(res.Breakdown.CapitalAllowance)},
		{"Personal rent relief", utils.FormatNaira(res.Breakdown.PersonalRentRelief)},
		{"Taxable income", utils.FormatNaira(res.TaxableIncome)},
		{"Tax rate", utils.FormatPercent(res.Breakdown.TaxRate)},
		{"WHT credit", utils.FormatNaira(res.Breakdown.WHTCredit)},
		{"Estimated tax", utils.FormatNaira(res.EstimatedTax)},
		{"Safe to spend", utils.FormatNaira(res.SafeToSpend)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r[0], r[1])
	}
	if res.PersonalTip != nil {
		fmt.Fprintf(w, "Tip\t%s relief of %s applied\n", res.PersonalTip.Category, utils.FormatNaira(res.PersonalTip.ReliefAmount))
	}
	return w.Flush()
}
