package compare

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Description  string                   `json:"description"`
	Inputs       domain.ProjectionInputs  `json:"inputs"`
	Result       *domain.ProjectionResult `json:"-"`

	// Key Metrics
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	NetBuyingCost     decimal.Decimal `json:"netBuyingCost"`
	TotalRentingCost  decimal.Decimal `json:"totalRentingCost"`
	BuyingAdvantage   decimal.Decimal `json:"buyingAdvantage"` // renting cost minus net buying cost
	BreakEvenYear     *int            `json:"breakEvenYear"`
	FinalEquity       decimal.Decimal `json:"finalEquity"`
	InvestmentBalance decimal.Decimal `json:"investmentBalance"`
	TotalTaxSavings   decimal.Decimal `json:"totalTaxSavings"`

	// Comparison to Base
	NetCostDiffFromBase    decimal.Decimal `json:"netCostDiffFromBase"`
	NetCostPctFromBase     decimal.Decimal `json:"netCostPctFromBase"`
	EquityDiffFromBase     decimal.Decimal `json:"equityDiffFromBase"`
	PaymentDiffFromBase    decimal.Decimal `json:"paymentDiffFromBase"`
	InvestmentDiffFromBase decimal.Decimal `json:"investmentDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from projection results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one projection
func (mc *MetricsCalculator) CalculateMetrics(name string, in domain.ProjectionInputs, result *domain.ProjectionResult) ComparisonResult {
	s := result.Summary
	return ComparisonResult{
		ScenarioName:      name,
		Inputs:            in,
		Result:            result,
		MonthlyPayment:    calculation.MonthlyMortgagePayment(in.HomePrice, in.DownPaymentPercent, in.InterestRate, in.MortgageTerm).Round(2),
		NetBuyingCost:     s.NetBuyingCost,
		TotalRentingCost:  s.TotalRentingCost,
		BuyingAdvantage:   s.TotalRentingCost.Sub(s.NetBuyingCost),
		BreakEvenYear:     result.BreakEvenYear,
		FinalEquity:       s.FinalEquity,
		InvestmentBalance: s.InvestmentBalance,
		TotalTaxSavings:   s.TotalTaxSavings,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetCostDiffFromBase = scenario.NetBuyingCost.Sub(base.NetBuyingCost)

	if !base.NetBuyingCost.IsZero() {
		scenario.NetCostPctFromBase = scenario.NetCostDiffFromBase.
			Div(base.NetBuyingCost.Abs()).
			Mul(decimal.NewFromInt(100))
	}

	scenario.EquityDiffFromBase = scenario.FinalEquity.Sub(base.FinalEquity)
	scenario.PaymentDiffFromBase = scenario.MonthlyPayment.Sub(base.MonthlyPayment)
	scenario.InvestmentDiffFromBase = scenario.InvestmentBalance.Sub(base.InvestmentBalance)

	return scenario
}

// breaksEvenSooner reports whether a reaches break-even strictly before b.
// A scenario that never breaks even is never sooner.
func breaksEvenSooner(a, b *int) bool {
	if a == nil {
		return false
	}
	return b == nil || *a < *b
}

func breakEvenText(year *int) string {
	if year == nil {
		return "never"
	}
	return fmt.Sprintf("year %d", *year)
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Find lowest net cost of owning
	lowestCost := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetBuyingCost.LessThan(lowestCost.NetBuyingCost) {
			lowestCost = alt
		}
	}

	if lowestCost != base {
		savings := base.NetBuyingCost.Sub(lowestCost.NetBuyingCost)
		recommendations = append(recommendations,
			"Lowest Cost: "+lowestCost.ScenarioName+" costs $"+savings.StringFixed(0)+
				" less to own than the base scenario")
	}

	// Find earliest break-even
	earliest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if breaksEvenSooner(alt.BreakEvenYear, earliest.BreakEvenYear) {
			earliest = alt
		}
	}

	if earliest != base {
		recommendations = append(recommendations,
			"Fastest Break-even: "+earliest.ScenarioName+" breaks even in "+
				breakEvenText(earliest.BreakEvenYear)+" (base: "+breakEvenText(base.BreakEvenYear)+")")
	}

	// Find most equity built
	mostEquity := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalEquity.GreaterThan(mostEquity.FinalEquity) {
			mostEquity = alt
		}
	}

	if mostEquity != base {
		gain := mostEquity.FinalEquity.Sub(base.FinalEquity)
		recommendations = append(recommendations,
			"Most Equity: "+mostEquity.ScenarioName+" builds $"+gain.StringFixed(0)+
				" more home equity")
	}

	rentingWins := !base.BuyingAdvantage.IsPositive()
	for _, alt := range compSet.AlternativeResults {
		if alt.BuyingAdvantage.IsPositive() {
			rentingWins = false
		}
	}
	if rentingWins {
		recommendations = append(recommendations,
			"Renting costs less than buying in every compared scenario over its time horizon")
	}

	return recommendations
}
