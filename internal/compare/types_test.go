package compare

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()
	in := domain.DefaultProjectionInputs()
	result := calculation.NewCalculationEngine().CalculateRentVsBuy(in)

	metrics := calc.CalculateMetrics("base", in, &result)

	assert.Equal(t, "base", metrics.ScenarioName)
	assert.Equal(t, "2398.20", metrics.MonthlyPayment.StringFixed(2))
	assert.True(t, metrics.NetBuyingCost.Equal(result.Summary.NetBuyingCost))
	assert.True(t, metrics.TotalRentingCost.Equal(result.Summary.TotalRentingCost))
	assert.True(t, metrics.BuyingAdvantage.Equal(result.Summary.TotalRentingCost.Sub(result.Summary.NetBuyingCost)))
	assert.Equal(t, result.BreakEvenYear, metrics.BreakEvenYear)
	assert.True(t, metrics.FinalEquity.Equal(result.Summary.FinalEquity))
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{
		ScenarioName:      "base",
		NetBuyingCost:     decimal.NewFromInt(200000),
		FinalEquity:       decimal.NewFromInt(300000),
		MonthlyPayment:    decimal.NewFromInt(2400),
		InvestmentBalance: decimal.NewFromInt(10000),
	}
	alt := ComparisonResult{
		ScenarioName:      "alt",
		NetBuyingCost:     decimal.NewFromInt(150000),
		FinalEquity:       decimal.NewFromInt(350000),
		MonthlyPayment:    decimal.NewFromInt(2700),
		InvestmentBalance: decimal.NewFromInt(25000),
	}

	got := calc.CalculateComparison(alt, base)
	assert.Equal(t, "-50000", got.NetCostDiffFromBase.String())
	assert.Equal(t, "-25", got.NetCostPctFromBase.String())
	assert.Equal(t, "50000", got.EquityDiffFromBase.String())
	assert.Equal(t, "300", got.PaymentDiffFromBase.String())
	assert.Equal(t, "15000", got.InvestmentDiffFromBase.String())

	zeroBase := ComparisonResult{}
	got = calc.CalculateComparison(alt, zeroBase)
	assert.True(t, got.NetCostPctFromBase.IsZero(), "no percentage against a zero base")
}

func TestGenerateRecommendations(t *testing.T) {
	recs := GenerateRecommendations(sampleSet())

	assert.Contains(t, recs, "Lowest Cost: never costs $251500 less to own than the base scenario")
	assert.Contains(t, recs, "Fastest Break-even: base_term_15 breaks even in year 5 (base: year 7)")
	assert.Contains(t, recs, "Most Equity: base_term_15 builds $150000 more home equity")
	assert.Len(t, recs, 3)
}

func TestGenerateRecommendations_RentingWins(t *testing.T) {
	set := &ComparisonSet{
		BaseResult: &ComparisonResult{ScenarioName: "base", BuyingAdvantage: decimal.NewFromInt(-10000)},
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "alt", BuyingAdvantage: decimal.NewFromInt(-5000)},
		},
	}
	recs := GenerateRecommendations(set)
	assert.Equal(t, []string{"Renting costs less than buying in every compared scenario over its time horizon"}, recs)

	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: set.BaseResult}))
}

func TestBreaksEvenSooner(t *testing.T) {
	assert.True(t, breaksEvenSooner(intPtr(3), nil))
	assert.True(t, breaksEvenSooner(intPtr(3), intPtr(4)))
	assert.False(t, breaksEvenSooner(intPtr(4), intPtr(4)))
	assert.False(t, breaksEvenSooner(nil, intPtr(4)))
	assert.False(t, breaksEvenSooner(nil, nil))
}
