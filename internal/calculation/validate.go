package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

type rangeCheck struct {
	value    decimal.Decimal
	min, max int64
	message  string
}

// ValidateInputs runs every input rule and collects the violations in check
// order. It never stops at the first failure.
func (ce *CalculationEngine) ValidateInputs(in domain.ProjectionInputs) domain.ValidationResult {
	errs := []string{}

	if !in.MonthlyRent.IsPositive() {
		errs = append(errs, "Monthly rent must be greater than 0")
	}
	if !in.HomePrice.IsPositive() {
		errs = append(errs, "Home price must be greater than 0")
	}
	if !in.AnnualIncome.IsPositive() {
		errs = append(errs, "Annual income must be greater than 0")
	}

	ranges := []rangeCheck{
		{in.DownPaymentPercent, 0, 100, "Down payment must be between 0% and 100%"},
		{in.InterestRate, 0, 30, "Interest rate must be between 0% and 30%"},
		{in.AnnualHomeValueIncrease, -10, 20, "Home value increase must be between -10% and 20%"},
		{in.AnnualRentIncrease, 0, 20, "Rent increase must be between 0% and 20%"},
		{in.AnnualInflation, 0, 15, "Inflation rate must be between 0% and 15%"},
		{in.AnnualReturnOnSavings, 0, 30, "Investment return must be between 0% and 30%"},
		{decimal.NewFromInt(int64(in.TimeHorizon)), 1, 50, "Time horizon must be between 1 and 50 years"},
		{decimal.NewFromInt(int64(in.MortgageTerm)), 5, 50, "Mortgage term must be between 5 and 50 years"},
	}
	for _, r := range ranges {
		if r.value.LessThan(decimal.NewFromInt(r.min)) || r.value.GreaterThan(decimal.NewFromInt(r.max)) {
			errs = append(errs, r.message)
		}
	}

	monthlyIncome := in.AnnualIncome.Div(twelve)
	if monthlyIncome.IsPositive() {
		housing := ce.Policy.Housing

		housingCost := ce.monthlyHousingCost(in)
		housingPct := percentOf(housingCost, monthlyIncome)
		if housingPct.GreaterThan(housing.MaxHousingCostRatio) {
			errs = append(errs, fmt.Sprintf(
				"Total monthly housing costs (%s%% of monthly income) exceed the recommended maximum of %s%%",
				housingPct.StringFixed(1), housing.MaxHousingCostRatio.String()))
		}

		rentPct := percentOf(in.MonthlyRent, monthlyIncome)
		if rentPct.GreaterThan(housing.MaxRentRatio) {
			errs = append(errs, fmt.Sprintf(
				"Monthly rent (%s%% of monthly income) exceeds the recommended maximum of %s%%",
				rentPct.StringFixed(1), housing.MaxRentRatio.String()))
		}
	}

	if len(errs) > 0 {
		ce.Logger.Debugf("input validation found %d problem(s)", len(errs))
	}
	return domain.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// monthlyHousingCost is the first-month cost of owning the home
func (ce *CalculationEngine) monthlyHousingCost(in domain.ProjectionInputs) decimal.Decimal {
	mortgage := MonthlyMortgagePayment(in.HomePrice, in.DownPaymentPercent, in.InterestRate, in.MortgageTerm)
	propertyTax := in.HomePrice.Mul(ce.propertyTaxRate(in.Location).Div(hundred)).Div(twelve)
	insurance := in.HomePrice.Mul(in.HomeInsuranceRate.Div(hundred)).Div(twelve)
	pmi := ce.CalculatePMI(in.HomePrice, in.DownPaymentPercent).MonthlyPMI

	return mortgage.Add(propertyTax).Add(insurance).Add(in.MonthlyHOAFees).Add(pmi).Add(in.MonthlyAdditionalExpenses)
}
