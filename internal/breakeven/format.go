package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted report for one solver result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN SOLVER RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Target Input:        %s\n", tf.targetLabel(result.Request.Target)))
	sb.WriteString(fmt.Sprintf("Break Even By:       year %d\n", result.Request.TargetYear))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("BOUNDARY\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Current Value:       %s\n", tf.formatValue(result.Request.Target, result.BaseValue)))
	sb.WriteString(fmt.Sprintf("Current Break-even:  %s\n", output.BreakEvenLabel(result.BaseBreakEvenYear, result.Request.Inputs.TimeHorizon)))
	if result.OptimalValue != nil {
		bound := "at least"
		if result.Direction == AtMost {
			bound = "at most"
		}
		sb.WriteString(fmt.Sprintf("Required Value:      %s %s\n", bound, tf.formatValue(result.Request.Target, *result.OptimalValue)))
		sb.WriteString(fmt.Sprintf("Change Needed:       %s%s\n", tf.deltaSymbol(result.ChangeNeeded), tf.formatValue(result.Request.Target, result.ChangeNeeded.Abs())))
		sb.WriteString(fmt.Sprintf("Break-even There:    %s\n", output.BreakEvenLabel(result.BreakEvenYear, result.Request.Inputs.TimeHorizon)))
	} else {
		sb.WriteString("Required Value:      none in the searched range\n")
	}
	sb.WriteString("\n")

	if p := result.Projection; p != nil {
		sb.WriteString("PROJECTED RESULTS AT BOUNDARY\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Net Buying Cost:     %s\n", output.FormatCurrency(p.Summary.NetBuyingCost)))
		sb.WriteString(fmt.Sprintf("Total Renting Cost:  %s\n", output.FormatCurrency(p.Summary.TotalRentingCost)))
		sb.WriteString(fmt.Sprintf("Final Equity:        %s\n", output.FormatCurrency(p.Summary.FinalEquity)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMultiDimensional formats results from several targets
func (tf *TableFormatter) FormatMultiDimensional(result *MultiDimensionalResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN BOUNDARIES\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("%-20s %18s %18s %18s\n", "Input", "Current", "Required", "Break-even"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		required := "-"
		if res.OptimalValue != nil {
			prefix := ">= "
			if res.Direction == AtMost {
				prefix = "<= "
			}
			required = prefix + tf.formatValue(res.Request.Target, *res.OptimalValue)
		}
		sb.WriteString(fmt.Sprintf("%-20s %18s %18s %18s\n",
			tf.truncate(tf.targetLabel(res.Request.Target), 20),
			tf.formatValue(res.Request.Target, res.BaseValue),
			required,
			output.BreakEvenLabel(res.BreakEvenYear, res.Request.Inputs.TimeHorizon)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiDimensional formats multi-target results as JSON
func (jf *JSONFormatter) FormatMultiDimensional(result *MultiDimensionalResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) targetLabel(target OptimizationTarget) string {
	switch target {
	case OptimizeHomePrice:
		return "Home Price"
	case OptimizeDownPayment:
		return "Down Payment"
	case OptimizeRent:
		return "Monthly Rent"
	}
	return string(target)
}

func (tf *TableFormatter) formatValue(target OptimizationTarget, d decimal.Decimal) string {
	if target == OptimizeDownPayment {
		return output.FormatPercent(d)
	}
	return output.FormatCurrency(d)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsNegative() {
		return "-"
	}
	return "+"
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
