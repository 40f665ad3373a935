package calculation

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioInputs() domain.ProjectionInputs {
	in := domain.DefaultProjectionInputs()
	rate := d("1.1")
	in.Location = domain.Location{State: "CA", PropertyTaxRate: &rate}
	return in
}

func TestCalculateRentVsBuy_EndToEnd(t *testing.T) {
	result := CalculateRentVsBuy(scenarioInputs())

	require.Len(t, result.Results, 10)
	for i, r := range result.Results {
		assert.Equal(t, i+1, r.Year, "years are 1-based and strictly increasing")
		assert.False(t, r.BuyingEquity.IsNegative(), "year %d equity", r.Year)
		assert.True(t, r.BuyingNetCost.Sub(r.BuyingCumulativeCost.Sub(r.BuyingEquity)).Abs().LessThanOrEqual(d("0.01")),
			"net cost is cumulative cost minus equity")
	}

	expected := d("500000").Mul(d("1.03").Pow(decimal.NewFromInt(10))).Round(2)
	assert.True(t, result.Summary.FinalHomeValue.Equal(expected),
		"final home value %s, want %s", result.Summary.FinalHomeValue, expected)
	assert.Equal(t, "671958.19", result.Summary.FinalHomeValue.StringFixed(2))

	last := result.Results[len(result.Results)-1]
	assert.True(t, result.Summary.FinalEquity.Equal(last.BuyingEquity), "summary and last year agree on equity")
	assert.True(t, result.Summary.TotalBuyingCost.Equal(last.BuyingCumulativeCost))
	assert.True(t, result.Summary.TotalRentingCost.Equal(last.RentingCumulativeCost))
}

func TestCalculateRentVsBuy_AppreciationCompoundsOncePerYear(t *testing.T) {
	in := scenarioInputs()
	in.HomePrice = d("1000000")
	in.AnnualIncome = d("400000")
	in.TimeHorizon = 20

	result := CalculateRentVsBuy(in)

	require.Len(t, result.Results, 20)
	expected := d("1000000").Mul(d("1.03").Pow(decimal.NewFromInt(20))).Round(2)
	assert.True(t, result.Summary.FinalHomeValue.Equal(expected))
	assert.Equal(t, "1806111.23", result.Summary.FinalHomeValue.StringFixed(2))
	assert.True(t, result.Results[0].HomeValue.Equal(d("1030000")), "first year already appreciated once")
}

func TestCalculateRentVsBuy_PMIRemovalIsMonotonic(t *testing.T) {
	in := scenarioInputs()
	in.DownPaymentPercent = d("5")
	in.TimeHorizon = 30

	result := CalculateRentVsBuy(in)

	removedAt := 0
	for _, r := range result.Results {
		if removedAt > 0 {
			assert.True(t, r.PMIRemoved, "PMI came back in year %d after removal in year %d", r.Year, removedAt)
			assert.True(t, r.PMICost.IsZero(), "PMI charged in year %d after removal", r.Year)
			continue
		}
		if r.PMIRemoved {
			removedAt = r.Year
		} else {
			assert.True(t, r.PMICost.Equal(d("4512.50")), "PMI base stays at the original price")
		}
	}
	assert.Greater(t, removedAt, 1, "5% down should carry PMI for at least one year")
}

func TestCalculateRentVsBuy_PMIRemovalWithFallingValues(t *testing.T) {
	in := scenarioInputs()
	in.DownPaymentPercent = d("10")
	in.AnnualHomeValueIncrease = d("-10")
	in.TimeHorizon = 30

	result := CalculateRentVsBuy(in)

	seen := false
	for _, r := range result.Results {
		if seen {
			assert.True(t, r.PMIRemoved, "year %d", r.Year)
		}
		seen = seen || r.PMIRemoved
	}
	assert.True(t, seen, "original-price trigger should still remove PMI as the loan amortizes")
}

func TestCalculateRentVsBuy_RentersInsuranceIsFlat(t *testing.T) {
	in := scenarioInputs()
	in.AnnualInflation = d("5")
	in.TimeHorizon = 25

	result := CalculateRentVsBuy(in)

	for _, r := range result.Results {
		assert.True(t, r.RentersInsurance.Equal(d("360")), "year %d renters insurance %s", r.Year, r.RentersInsurance)
		diff := r.AnnualRentingCost.Sub(r.MonthlyRent.Mul(twelve).Add(d("360"))).Abs()
		assert.True(t, diff.LessThanOrEqual(d("0.06")), "year %d renting cost is rent plus insurance", r.Year)
	}
}

func TestCalculateRentVsBuy_RentGrowsAtItsOwnRate(t *testing.T) {
	in := scenarioInputs()
	in.AnnualInflation = d("10")
	in.AnnualRentIncrease = d("2")

	result := CalculateRentVsBuy(in)

	assert.True(t, result.Results[0].MonthlyRent.Equal(d("2000")))
	assert.True(t, result.Results[1].MonthlyRent.Equal(d("2040")))
	assert.True(t, result.Results[2].MonthlyRent.Equal(d("2080.80")))
}

func TestCalculateRentVsBuy_MaintenanceCompoundsValueAndInflation(t *testing.T) {
	in := scenarioInputs()
	result := CalculateRentVsBuy(in)

	col := 1.38
	for _, r := range result.Results[:3] {
		value, _ := r.HomeValue.Float64()
		inflation, _ := growth(d("3"), r.Year-1).Float64()
		want := value * 0.01 * col * inflation
		got, _ := r.MaintenanceCost.Float64()
		assert.InDelta(t, want, got, 0.02, "year %d", r.Year)
	}
}

func TestCalculateRentVsBuy_BreakEvenIsCostOnly(t *testing.T) {
	result := CalculateRentVsBuy(scenarioInputs())

	var want *int
	for _, r := range result.Results {
		if r.BuyingNetCost.LessThanOrEqual(r.RentingCumulativeCost) {
			year := r.Year
			want = &year
			break
		}
	}
	assert.Equal(t, want, result.BreakEvenYear, "first year net buying cost <= cumulative rent, ignoring investments")
}

func TestBreakEvenYear_CostOnlyScan(t *testing.T) {
	results := []domain.YearResult{
		{Year: 1, BuyingNetCost: d("100"), RentingCumulativeCost: d("50"), InvestmentBalance: d("1000000")},
		{Year: 2, BuyingNetCost: d("120"), RentingCumulativeCost: d("120")},
		{Year: 3, BuyingNetCost: d("90"), RentingCumulativeCost: d("200")},
	}
	year := BreakEvenYear(results)
	require.NotNil(t, year)
	assert.Equal(t, 2, *year, "ties count as break-even")

	assert.Nil(t, BreakEvenYear(results[:1]), "no crossover within the horizon")
	assert.Nil(t, BreakEvenYear(nil))
}

func TestCalculateRentVsBuy_SellingCosts(t *testing.T) {
	result := CalculateRentVsBuy(scenarioInputs())
	s := result.Summary

	want := s.FinalHomeValue.Mul(d("0.06")).Mul(d("1.38"))
	assert.True(t, s.SellingCosts.Sub(want).Abs().LessThanOrEqual(d("0.01")))
	assert.True(t, s.NetBuyingCost.Sub(s.TotalBuyingCost.Sub(s.FinalEquity).Add(s.SellingCosts)).Abs().LessThanOrEqual(d("0.02")))
}

func TestCalculateRentVsBuy_InvestmentOnlyFromBuyingSurplus(t *testing.T) {
	in := scenarioInputs()
	in.MonthlyRent = d("500")
	result := CalculateRentVsBuy(in)

	prev := decimal.Zero
	for _, r := range result.Results {
		assert.True(t, r.AnnualBuyingCost.GreaterThan(r.AnnualRentingCost))
		assert.True(t, r.InvestmentBalance.GreaterThan(prev), "renter invests the surplus every year")
		prev = r.InvestmentBalance
	}

	in.MonthlyRent = d("9000")
	result = CalculateRentVsBuy(in)
	for _, r := range result.Results {
		assert.True(t, r.InvestmentBalance.IsZero(), "renting never invests when it costs more")
	}
}

// The renter contributes only when buying costs more, but the account grows
// by the return rate every year, not only in years with a contribution.
func TestCalculateRentVsBuy_InvestmentGrowsInYearsWithoutContribution(t *testing.T) {
	p := NewCalculationEngine().NewProjection(scenarioInputs())

	state := p.Initial()
	state.InvestmentBalance = d("1000")
	state.MonthlyRent = d("20000")

	next, r := p.Step(state, 3)
	require.True(t, r.AnnualRentingCost.GreaterThan(r.AnnualBuyingCost))
	assert.Equal(t, "1060.00", r.InvestmentBalance.StringFixed(2), "no contribution, still 6% growth")
	assert.Equal(t, "1060.00", next.InvestmentBalance.StringFixed(2))
}

func TestCalculateRentVsBuy_LoanPaidOffBeforeHorizon(t *testing.T) {
	in := scenarioInputs()
	in.MortgageTerm = 5
	in.TimeHorizon = 10

	result := CalculateRentVsBuy(in)
	require.Len(t, result.Results, 10)

	payment := result.Results[0].MortgagePayment
	assert.True(t, payment.GreaterThan(d("92000")), "five-year payment %s", payment)

	paidOff := false
	for _, r := range result.Results {
		assert.False(t, r.MortgageBalance.IsNegative(), "year %d", r.Year)
		assert.True(t, r.MortgagePayment.Equal(payment), "full payment charged in year %d", r.Year)
		if paidOff {
			assert.True(t, r.InterestPaid.IsZero(), "year %d", r.Year)
			assert.True(t, r.PrincipalPaid.Equal(payment), "year %d", r.Year)
			// a zero balance prices the deduction on the initial 400000 loan:
			// (24000 + 5500 - 15000) * 24%
			assert.Equal(t, "3480.00", r.TaxSavings.StringFixed(2), "year %d", r.Year)
		}
		paidOff = paidOff || r.MortgageBalance.IsZero()
	}
	assert.True(t, paidOff)
	assert.True(t, result.Results[9].MortgageBalance.IsZero())
}

func TestCalculateRentVsBuy_DegenerateInputsDoNotPanic(t *testing.T) {
	in := scenarioInputs()
	in.InterestRate = decimal.Zero
	in.TimeHorizon = 0
	in.MortgageTerm = 0

	assert.NotPanics(t, func() {
		result := CalculateRentVsBuy(in)
		assert.Empty(t, result.Results)
		assert.Nil(t, result.BreakEvenYear)
		assert.True(t, result.Summary.FinalHomeValue.Equal(in.HomePrice))
	})
}

func TestProjection_StepIsPure(t *testing.T) {
	engine := NewCalculationEngine()
	p := engine.NewProjection(scenarioInputs())
	initial := p.Initial()

	s1, r1 := p.Step(initial, 1)
	s2, r2 := p.Step(initial, 1)

	assert.Equal(t, r1, r2)
	assert.Equal(t, s1, s2)
	assert.True(t, initial.HomeValue.Equal(d("500000")), "input state is not modified")

	full := engine.CalculateRentVsBuy(scenarioInputs())
	assert.Equal(t, full.Results[0], r1)

	_, r2 = p.Step(s1, 2)
	assert.Equal(t, full.Results[1], r2)
}
