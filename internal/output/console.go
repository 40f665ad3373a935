package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

const rule = "================================================================================="

// ConsoleFormatter renders the detailed plain-text report
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *RentBuyReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "RENT VS BUY ANALYSIS (%d tax tables)\n", report.TaxYear)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	for i, s := range report.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, s.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if s.Description != "" {
			fmt.Fprintln(&buf, s.Description)
		}
		writeInputs(&buf, s)
		writeValidation(&buf, s.Validation)
		WriteYearTable(&buf, s.Result.Results)
		writeSummary(&buf, s)
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

func writeInputs(w io.Writer, s ScenarioReport) {
	in := s.Inputs
	fmt.Fprintln(w, "INPUTS:")
	fmt.Fprintf(w, "  Location:               %s\n", in.Location.StateCode())
	fmt.Fprintf(w, "  Annual Income:          %s\n", FormatCurrency(in.AnnualIncome))
	fmt.Fprintf(w, "  Monthly Rent:           %s (+%s/yr)\n", FormatCurrency(in.MonthlyRent), FormatPercent(in.AnnualRentIncrease))
	fmt.Fprintf(w, "  Home Price:             %s\n", FormatCurrency(in.HomePrice))
	fmt.Fprintf(w, "  Down Payment:           %s (%s)\n", FormatPercent(in.DownPaymentPercent), FormatCurrency(in.HomePrice.Sub(in.LoanAmount())))
	fmt.Fprintf(w, "  Mortgage:               %s at %s for %d years\n", FormatCurrency(in.LoanAmount()), FormatPercent(in.InterestRate), in.MortgageTerm)
	fmt.Fprintf(w, "  Monthly Payment (P&I):  %s\n", FormatCurrency(s.MonthlyPayment))
	if s.PMI.PMIRequired {
		fmt.Fprintf(w, "  PMI:                    %s/month (%s/year)\n", FormatCurrency(s.PMI.MonthlyPMI), FormatCurrency(s.PMI.AnnualPMI))
	} else {
		fmt.Fprintf(w, "  PMI:                    not required\n")
	}
	fmt.Fprintf(w, "  Appreciation:           %s/yr\n", FormatPercent(in.AnnualHomeValueIncrease))
	fmt.Fprintf(w, "  Horizon:                %d years\n", in.TimeHorizon)
	fmt.Fprintln(w)
}

func writeValidation(w io.Writer, v domain.ValidationResult) {
	if v.IsValid {
		return
	}
	fmt.Fprintln(w, "INPUT WARNINGS:")
	for _, e := range v.Errors {
		fmt.Fprintf(w, "  ! %s\n", e)
	}
	fmt.Fprintln(w)
}

// WriteYearTable prints the year-by-year headline series
func WriteYearTable(w io.Writer, results []domain.YearResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No projection years")
		return
	}
	fmt.Fprintf(w, "%-5s %16s %16s %16s %16s %16s %16s\n",
		"Year", "Home Value", "Equity", "Buying (cum)", "Net Buying", "Renting (cum)", "Investments")
	fmt.Fprintln(w, strings.Repeat("-", 5+6*17))
	for _, r := range results {
		fmt.Fprintf(w, "%-5d %16s %16s %16s %16s %16s %16s\n",
			r.Year,
			FormatCurrency(r.HomeValue),
			FormatCurrency(r.BuyingEquity),
			FormatCurrency(r.BuyingCumulativeCost),
			FormatCurrency(r.BuyingNetCost),
			FormatCurrency(r.RentingCumulativeCost),
			FormatCurrency(r.InvestmentBalance))
	}
	fmt.Fprintln(w)
}

func writeSummary(w io.Writer, s ScenarioReport) {
	sum := s.Result.Summary
	fmt.Fprintln(w, "SUMMARY:")
	fmt.Fprintf(w, "  Total Buying Cost:      %s\n", FormatCurrency(sum.TotalBuyingCost))
	fmt.Fprintf(w, "  Total Renting Cost:     %s\n", FormatCurrency(sum.TotalRentingCost))
	fmt.Fprintf(w, "  Final Home Value:       %s\n", FormatCurrency(sum.FinalHomeValue))
	fmt.Fprintf(w, "  Final Equity:           %s\n", FormatCurrency(sum.FinalEquity))
	fmt.Fprintf(w, "  Selling Costs:          %s\n", FormatCurrency(sum.SellingCosts))
	fmt.Fprintf(w, "  Net Buying Cost:        %s\n", FormatCurrency(sum.NetBuyingCost))
	fmt.Fprintf(w, "  Tax Savings:            %s\n", FormatCurrency(sum.TotalTaxSavings))
	fmt.Fprintf(w, "  Renter Investments:     %s\n", FormatCurrency(sum.InvestmentBalance))
	fmt.Fprintf(w, "  Break-even Year:        %s\n", BreakEvenLabel(s.Result.BreakEvenYear, s.Inputs.TimeHorizon))
}

// BreakEvenLabel describes a break-even year for display
func BreakEvenLabel(year *int, horizon int) string {
	if year == nil {
		return fmt.Sprintf("not within %d years", horizon)
	}
	return fmt.Sprintf("year %d", *year)
}
