package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Monthly Payment",
		"Net Buying Cost",
		"Total Renting Cost",
		"Buying Advantage",
		"Break-even Year",
		"Final Equity",
		"Investment Balance",
		"Net Cost Diff from Base",
		"Net Cost % Change",
		"Equity Diff from Base",
		"Payment Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row. An empty break-even
// cell means buying never caught up within the horizon.
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	breakEven := ""
	if result.BreakEvenYear != nil {
		breakEven = strconv.Itoa(*result.BreakEvenYear)
	}
	return []string{
		result.ScenarioName,
		scenarioType,
		result.MonthlyPayment.StringFixed(2),
		result.NetBuyingCost.StringFixed(2),
		result.TotalRentingCost.StringFixed(2),
		result.BuyingAdvantage.StringFixed(2),
		breakEven,
		result.FinalEquity.StringFixed(2),
		result.InvestmentBalance.StringFixed(2),
		result.NetCostDiffFromBase.StringFixed(2),
		result.NetCostPctFromBase.StringFixed(2),
		result.EquityDiffFromBase.StringFixed(2),
		result.PaymentDiffFromBase.StringFixed(2),
	}
}
