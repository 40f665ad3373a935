package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultFIREMaxAge     = 100
	defaultTraditionalAge = 65
	defaultWithdrawalRate = 4
)

var (
	leanFIREFactor = decimal.NewFromFloat(0.7)
	fatFIREFactor  = decimal.NewFromFloat(1.5)
)

// CalculateFIRE projects the portfolio year by year until it covers
// inflation-adjusted expenses at the safe withdrawal rate, or the age cap
func CalculateFIRE(in domain.FIREInputs) domain.FIREResult {
	return NewCalculationEngine().CalculateFIRE(in)
}

// CalculateFIRE runs the FIRE projection and logs the outcome
func (ce *CalculationEngine) CalculateFIRE(in domain.FIREInputs) domain.FIREResult {
	maxAge := in.MaxAge
	if maxAge <= 0 {
		maxAge = defaultFIREMaxAge
	}
	retireAge := in.TraditionalRetireAge
	if retireAge <= 0 {
		retireAge = defaultTraditionalAge
	}
	swr := in.WithdrawalRate
	if !swr.IsPositive() {
		swr = decimal.NewFromInt(defaultWithdrawalRate)
	}
	swr = swr.Div(hundred)

	savings := decimal.Max(decimal.Zero, in.AnnualIncome.Sub(in.AnnualExpenses))
	if in.AnnualSavings != nil {
		savings = *in.AnnualSavings
	}

	fireNumber := in.AnnualExpenses.Div(swr)
	result := domain.FIREResult{
		FIRENumber:      roundCents(fireNumber),
		LeanFIRENumber:  roundCents(fireNumber.Mul(leanFIREFactor)),
		FatFIRENumber:   roundCents(fireNumber.Mul(fatFIREFactor)),
		CoastFIRENumber: roundCents(coastFIRE(fireNumber, in.ExpectedReturn, in.Inflation, retireAge-in.CurrentAge)),
		AnnualSavings:   roundCents(savings),
		SavingsRate:     roundCents(percentOf(savings, in.AnnualIncome)),
		Projection:      []domain.FIREYear{},
	}

	if in.CurrentSavings.GreaterThanOrEqual(fireNumber) {
		years, age := 0, in.CurrentAge
		result.YearsToFIRE, result.FIREAge = &years, &age
		return result
	}

	growthFactor := one.Add(in.ExpectedReturn.Div(hundred))
	inflationFactor := one.Add(in.Inflation.Div(hundred))

	portfolio := in.CurrentSavings
	expenses := in.AnnualExpenses
	contribution := savings
	for year := 1; in.CurrentAge+year <= maxAge; year++ {
		expenses = expenses.Mul(inflationFactor)
		target := expenses.Div(swr)
		portfolio = portfolio.Mul(growthFactor).Add(contribution)
		reached := portfolio.GreaterThanOrEqual(target)

		result.Projection = append(result.Projection, domain.FIREYear{
			Year:           year,
			Age:            in.CurrentAge + year,
			Contribution:   roundCents(contribution),
			AnnualExpenses: roundCents(expenses),
			FIRENumber:     roundCents(target),
			Portfolio:      roundCents(portfolio),
			Reached:        reached,
		})
		if reached {
			years, age := year, in.CurrentAge+year
			result.YearsToFIRE, result.FIREAge = &years, &age
			break
		}
		contribution = contribution.Mul(inflationFactor)
	}

	if result.FIREAge == nil {
		ce.Logger.Infof("FIRE not reached by age %d", maxAge)
	} else {
		ce.Logger.Debugf("FIRE reached at age %d after %d years", *result.FIREAge, *result.YearsToFIRE)
	}
	return result
}

// coastFIRE is what must be invested today so that growth alone reaches the
// FIRE number by the traditional retirement age, in today's dollars
func coastFIRE(fireNumber, expectedReturn, inflation decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return fireNumber
	}
	realGrowth := one.Add(expectedReturn.Div(hundred)).Div(one.Add(inflation.Div(hundred)))
	if !realGrowth.IsPositive() {
		return fireNumber
	}
	return fireNumber.Div(realGrowth.Pow(decimal.NewFromInt(int64(years))))
}
