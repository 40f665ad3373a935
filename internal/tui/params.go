package tui

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
	"github.com/shopspring/decimal"
)

// parameter ties a slider to one projection input
type parameter struct {
	slider *components.ParameterSlider
	set    func(*domain.ProjectionInputs, decimal.Decimal)
}

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func wholeDollars(v decimal.Decimal) string {
	s := output.FormatCurrency(v.Round(0))
	return s[:len(s)-3]
}

func years(v decimal.Decimal) int { return int(v.IntPart()) }

// newParameters builds the editable inputs from in, in display order
func newParameters(in domain.ProjectionInputs) []parameter {
	return []parameter{
		{
			slider: components.NewParameterSlider("Home Price", in.HomePrice, d(50000), d(5000000), d(10000)).WithFormat(wholeDollars),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.HomePrice = v },
		},
		{
			slider: components.NewParameterSlider("Down Payment", in.DownPaymentPercent, d(0), d(100), d(1)).WithPlaces(1).WithUnit("%"),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.DownPaymentPercent = v },
		},
		{
			slider: components.NewParameterSlider("Interest Rate", in.InterestRate, d(0), d(30), d(0.125)).WithPlaces(3).WithUnit("%"),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.InterestRate = v },
		},
		{
			slider: components.NewParameterSlider("Mortgage Term", decimal.NewFromInt(int64(in.MortgageTerm)), d(5), d(50), d(5)).WithUnit(" yrs"),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.MortgageTerm = years(v) },
		},
		{
			slider: components.NewParameterSlider("Monthly Rent", in.MonthlyRent, d(100), d(20000), d(50)).WithFormat(wholeDollars),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.MonthlyRent = v },
		},
		{
			slider: components.NewParameterSlider("Rent Increase", in.AnnualRentIncrease, d(0), d(20), d(0.5)).WithPlaces(1).WithUnit("%"),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.AnnualRentIncrease = v },
		},
		{
			slider: components.NewParameterSlider("Home Appreciation", in.AnnualHomeValueIncrease, d(-10), d(20), d(0.5)).WithPlaces(1).WithUnit("%"),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.AnnualHomeValueIncrease = v },
		},
		{
			slider: components.NewParameterSlider("Investment Return", in.AnnualReturnOnSavings, d(0), d(30), d(0.5)).WithPlaces(1).WithUnit("%"),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.AnnualReturnOnSavings = v },
		},
		{
			slider: components.NewParameterSlider("Time Horizon", decimal.NewFromInt(int64(in.TimeHorizon)), d(1), d(50), d(1)).WithUnit(" yrs"),
			set:    func(p *domain.ProjectionInputs, v decimal.Decimal) { p.TimeHorizon = years(v) },
		},
	}
}
