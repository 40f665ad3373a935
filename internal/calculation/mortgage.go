package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// MonthlyMortgagePayment returns the fixed monthly payment that amortizes
// homePrice*(1-downPaymentPercent/100) over termYears*12 payments at
// annualRate/100/12 per month.
//
// Callers are expected to pass a positive price and term; a non-positive
// term yields a zero payment.
func MonthlyMortgagePayment(homePrice, downPaymentPercent, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	loan := homePrice.Mul(one.Sub(downPaymentPercent.Div(hundred)))
	return loanPayment(loan, annualRate, termYears)
}

func loanPayment(loan, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	n := termYears * 12
	if n <= 0 {
		return decimal.Zero
	}
	i := annualRate.Div(hundred).Div(twelve)
	if i.IsZero() {
		return loan.Div(decimal.NewFromInt(int64(n)))
	}
	f := one.Add(i).Pow(decimal.NewFromInt(int64(n)))
	return loan.Mul(i).Mul(f).Div(f.Sub(one))
}

// AmortizationSchedule lists every monthly payment of the loan. The final
// payment absorbs rounding so the balance ends at exactly zero.
func AmortizationSchedule(homePrice, downPaymentPercent, annualRate decimal.Decimal, termYears int) []domain.AmortizationRow {
	n := termYears * 12
	if n <= 0 {
		return nil
	}

	balance := homePrice.Mul(one.Sub(downPaymentPercent.Div(hundred)))
	payment := roundCents(loanPayment(balance, annualRate, termYears))
	i := annualRate.Div(hundred).Div(twelve)

	rows := make([]domain.AmortizationRow, 0, n)
	for month := 1; month <= n && balance.IsPositive(); month++ {
		interest := roundCents(balance.Mul(i))
		principal := payment.Sub(interest)
		if month == n || principal.GreaterThan(balance) {
			principal = balance
		}
		balance = balance.Sub(principal)
		rows = append(rows, domain.AmortizationRow{
			Month:     month,
			Payment:   principal.Add(interest),
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows
}

// CalculatePMI returns the mortgage insurance premium for a purchase.
// The annual premium is rounded to cents before the monthly figure is derived.
func (ce *CalculationEngine) CalculatePMI(homePrice, downPaymentPercent decimal.Decimal) domain.PMIResult {
	housing := ce.Policy.Housing
	if downPaymentPercent.GreaterThanOrEqual(housing.PMIExemptDownPercent) || len(housing.PMITiers) == 0 {
		return domain.PMIResult{MonthlyPMI: decimal.Zero, AnnualPMI: decimal.Zero, PMIRequired: false}
	}

	rate := housing.PMITiers[0].Rate
	for _, tier := range housing.PMITiers {
		if downPaymentPercent.GreaterThanOrEqual(tier.MinDownPercent) {
			rate = tier.Rate
		}
	}

	loan := homePrice.Mul(one.Sub(downPaymentPercent.Div(hundred)))
	annual := roundCents(loan.Mul(rate))
	return domain.PMIResult{
		MonthlyPMI:  roundCents(annual.Div(twelve)),
		AnnualPMI:   annual,
		PMIRequired: true,
	}
}
