package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatTaxReport renders a tax result as plain text
func FormatTaxReport(r domain.TaxResult) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "TAX ESTIMATE (%d, %s)\n", r.TaxYear, r.FilingStatus)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME:")
	for _, cat := range []domain.IncomeCategory{domain.IncomeWages, domain.IncomeSelfEmployment, domain.IncomeInvestment, domain.IncomeRental, domain.IncomeOther} {
		if amt, ok := r.IncomeByCategory[cat]; ok && !amt.IsZero() {
			fmt.Fprintf(&buf, "  %-22s %s\n", strings.ReplaceAll(string(cat), "_", " ")+":", FormatCurrency(amt))
		}
	}
	fmt.Fprintf(&buf, "  %-22s %s\n", "Total Income:", FormatCurrency(r.TotalIncome))
	fmt.Fprintf(&buf, "  %-22s %s\n", "Pre-tax Contributions:", FormatCurrency(r.PreTaxContributions))
	fmt.Fprintf(&buf, "  %-22s %s\n", "AGI:", FormatCurrency(r.AdjustedGrossIncome))
	deduction := "Standard Deduction:"
	if r.UsedItemized {
		deduction = "Itemized Deductions:"
	}
	fmt.Fprintf(&buf, "  %-22s %s\n", deduction, FormatCurrency(r.Deduction))
	fmt.Fprintf(&buf, "  %-22s %s\n", "Taxable Income:", FormatCurrency(r.TaxableIncome))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FEDERAL BRACKETS:")
	for _, b := range r.BracketBreakdown {
		upper := "and up"
		if b.Max != nil {
			upper = "to " + FormatCurrency(*b.Max)
		}
		fmt.Fprintf(&buf, "  %7s  %s %-16s taxed %14s -> %s\n", FormatRate(b.Rate), FormatCurrency(b.Min), upper, FormatCurrency(b.TaxableAmount), FormatCurrency(b.Tax))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TAXES:")
	fmt.Fprintf(&buf, "  %-22s %s\n", "Federal:", FormatCurrency(r.FederalTax))
	fmt.Fprintf(&buf, "  %-22s %s\n", "State:", FormatCurrency(r.StateTax))
	fmt.Fprintf(&buf, "  %-22s %s\n", "Social Security:", FormatCurrency(r.SocialSecurityTax))
	fmt.Fprintf(&buf, "  %-22s %s\n", "Medicare:", FormatCurrency(r.MedicareTax))
	if !r.SelfEmploymentTax.IsZero() {
		fmt.Fprintf(&buf, "  %-22s %s\n", "Self-employment:", FormatCurrency(r.SelfEmploymentTax))
	}
	fmt.Fprintf(&buf, "  %-22s %s\n", "TOTAL TAX:", FormatCurrency(r.TotalTax))
	fmt.Fprintf(&buf, "  %-22s %s\n", "Marginal Rate:", FormatRate(r.MarginalRate))
	fmt.Fprintf(&buf, "  %-22s %s\n", "Effective Rate:", FormatPercent(r.EffectiveTaxRate))
	fmt.Fprintf(&buf, "  %-22s %s\n", "After-tax Income:", FormatCurrency(r.AfterTaxIncome))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SAVINGS:")
	fmt.Fprintf(&buf, "  %-22s %s (%s of income)\n", "Contributions:", FormatCurrency(r.TotalContributions), FormatPercent(r.SavingsRate))
	for _, kind := range domain.AccountKinds {
		if room, ok := r.UnusedRoom[kind]; ok && room.IsPositive() {
			fmt.Fprintf(&buf, "  %-22s %s\n", "Unused "+string(kind)+":", FormatCurrency(room))
		}
	}
	if n := len(r.ProjectedSavings); n > 0 {
		last := r.ProjectedSavings[n-1]
		fmt.Fprintf(&buf, "  After %d years:         %s now, %s if every account is funded\n",
			last.Year, FormatCurrency(last.Current), FormatCurrency(last.Optimized))
	}
	fmt.Fprintln(&buf)

	if len(r.Tips) > 0 {
		fmt.Fprintln(&buf, "TIPS:")
		for _, tip := range r.Tips {
			fmt.Fprintf(&buf, "• %s\n", tip)
		}
	}

	return buf.Bytes()
}

// FormatFIREReport renders a FIRE projection as plain text
func FormatFIREReport(r domain.FIREResult) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "FINANCIAL INDEPENDENCE PROJECTION")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "  FIRE Number:       %s\n", FormatCurrency(r.FIRENumber))
	fmt.Fprintf(&buf, "  Lean FIRE:         %s\n", FormatCurrency(r.LeanFIRENumber))
	fmt.Fprintf(&buf, "  Fat FIRE:          %s\n", FormatCurrency(r.FatFIRENumber))
	fmt.Fprintf(&buf, "  Coast FIRE:        %s\n", FormatCurrency(r.CoastFIRENumber))
	fmt.Fprintf(&buf, "  Annual Savings:    %s (%s of income)\n", FormatCurrency(r.AnnualSavings), FormatPercent(r.SavingsRate))
	if r.YearsToFIRE != nil {
		fmt.Fprintf(&buf, "  Years to FIRE:     %d (age %d)\n", *r.YearsToFIRE, *r.FIREAge)
	} else {
		fmt.Fprintln(&buf, "  Years to FIRE:     not reached")
	}
	fmt.Fprintln(&buf)

	if len(r.Projection) == 0 {
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "%-5s %-4s %16s %16s %16s %16s\n", "Year", "Age", "Contribution", "Expenses", "Target", "Portfolio")
	fmt.Fprintln(&buf, strings.Repeat("-", 78))
	for _, y := range r.Projection {
		marker := ""
		if y.Reached {
			marker = " *"
		}
		fmt.Fprintf(&buf, "%-5d %-4d %16s %16s %16s %16s%s\n",
			y.Year, y.Age, FormatCurrency(y.Contribution), FormatCurrency(y.AnnualExpenses),
			FormatCurrency(y.FIRENumber), FormatCurrency(y.Portfolio), marker)
	}

	return buf.Bytes()
}

// FormatAmortization renders a loan schedule. With yearly set, months are
// rolled up into one line per loan year.
func FormatAmortization(rows []domain.AmortizationRow, yearly bool) []byte {
	var buf bytes.Buffer

	label := "Month"
	if yearly {
		label = "Year"
	}
	fmt.Fprintf(&buf, "%-6s %14s %14s %14s %16s\n", label, "Payment", "Principal", "Interest", "Balance")
	fmt.Fprintln(&buf, strings.Repeat("-", 68))

	var payment, principal, interest, totalInterest decimal.Decimal
	for i, r := range rows {
		totalInterest = totalInterest.Add(r.Interest)
		if !yearly {
			fmt.Fprintf(&buf, "%-6d %14s %14s %14s %16s\n", r.Month,
				FormatCurrency(r.Payment), FormatCurrency(r.Principal), FormatCurrency(r.Interest), FormatCurrency(r.Balance))
			continue
		}
		payment = payment.Add(r.Payment)
		principal = principal.Add(r.Principal)
		interest = interest.Add(r.Interest)
		if r.Month%12 == 0 || i == len(rows)-1 {
			fmt.Fprintf(&buf, "%-6d %14s %14s %14s %16s\n", (r.Month+11)/12,
				FormatCurrency(payment), FormatCurrency(principal), FormatCurrency(interest), FormatCurrency(r.Balance))
			payment, principal, interest = decimal.Zero, decimal.Zero, decimal.Zero
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Payments: %d   Total interest: %s\n", len(rows), FormatCurrency(totalInterest))
	return buf.Bytes()
}
