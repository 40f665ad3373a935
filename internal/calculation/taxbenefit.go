package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBenefitInputs are the parameters of the homeowner deduction estimate.
// Rates are percent values.
type TaxBenefitInputs struct {
	HomePrice          decimal.Decimal
	DownPaymentPercent decimal.Decimal
	InterestRate       decimal.Decimal
	PropertyTaxRate    decimal.Decimal
	AnnualIncome       decimal.Decimal
	MaritalStatus      domain.MaritalStatus
	// MortgageBalance defaults to the initial loan when zero
	MortgageBalance decimal.Decimal
}

// CalculateTaxBenefits estimates the federal tax saved by itemizing
// mortgage interest and property tax instead of taking the standard deduction
func (ce *CalculationEngine) CalculateTaxBenefits(in TaxBenefitInputs) domain.TaxBenefitResult {
	if in.MortgageBalance.IsZero() {
		in.MortgageBalance = in.HomePrice.Mul(one.Sub(in.DownPaymentPercent.Div(hundred)))
	}

	federal := ce.Policy.FederalTax
	status := in.MaritalStatus.FilingStatus()

	interest := in.MortgageBalance.Mul(in.InterestRate.Div(hundred))
	if interest.IsNegative() {
		interest = decimal.Zero
	}
	propertyTax := in.HomePrice.Mul(in.PropertyTaxRate.Div(hundred))
	deductible := decimal.Min(propertyTax, federal.SALTCap)

	itemized := interest.Add(deductible)
	standard := federal.StandardDeduction.For(status)
	marginal := MarginalRate(federal.Brackets.For(status), in.AnnualIncome)

	savings := decimal.Zero
	if itemized.GreaterThan(standard) {
		savings = itemized.Sub(standard).Mul(marginal)
	}

	return domain.TaxBenefitResult{
		AnnualTaxSavings:      savings,
		MarginalTaxRate:       marginal,
		ItemizedDeductions:    itemized,
		StandardDeduction:     standard,
		MortgageInterest:      interest,
		DeductiblePropertyTax: deductible,
	}
}

// MarginalRate returns the rate of the first bracket with min <= income < max.
// Income below every bracket gets zero.
func MarginalRate(brackets []domain.TaxBracket, income decimal.Decimal) decimal.Decimal {
	for _, b := range brackets {
		if b.Contains(income) {
			return b.Rate
		}
	}
	return decimal.Zero
}
