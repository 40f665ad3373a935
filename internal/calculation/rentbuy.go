package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Projection holds the per-run constants of a rent-vs-buy simulation.
// Step is a pure function of its arguments and these constants.
type Projection struct {
	engine *CalculationEngine
	inputs domain.ProjectionInputs

	location        domain.LocationRates
	propertyTaxRate decimal.Decimal
	annualPayment   decimal.Decimal
	pmi             domain.PMIResult

	annualPropertyTax decimal.Decimal
	annualInsurance   decimal.Decimal
	annualHOA         decimal.Decimal
}

// NewProjection fixes everything that does not change from year to year
func (ce *CalculationEngine) NewProjection(in domain.ProjectionInputs) *Projection {
	in = in.Clone()
	location := ce.CostOfLivingAdjustment(in.Location.State)
	ptRate := ce.propertyTaxRate(in.Location)

	return &Projection{
		engine:            ce,
		inputs:            in,
		location:          location,
		propertyTaxRate:   ptRate,
		annualPayment:     MonthlyMortgagePayment(in.HomePrice, in.DownPaymentPercent, in.InterestRate, in.MortgageTerm).Mul(twelve),
		pmi:               ce.CalculatePMI(in.HomePrice, in.DownPaymentPercent),
		annualPropertyTax: in.HomePrice.Mul(ptRate.Div(hundred)),
		annualInsurance:   in.HomePrice.Mul(in.HomeInsuranceRate.Div(hundred)),
		annualHOA:         in.MonthlyHOAFees.Mul(twelve).Mul(location.CostOfLiving),
	}
}

// Initial returns the state before the first simulated year
func (p *Projection) Initial() domain.SimulationState {
	return domain.SimulationState{
		MortgageBalance:   p.inputs.LoanAmount(),
		HomeValue:         p.inputs.HomePrice,
		MonthlyRent:       p.inputs.MonthlyRent,
		InvestmentBalance: decimal.Zero,
	}
}

// Step advances the simulation by one year (1-based) and returns the new
// state together with that year's result
func (p *Projection) Step(s domain.SimulationState, year int) (domain.SimulationState, domain.YearResult) {
	in := p.inputs
	housing := p.engine.Policy.Housing

	// mortgage; the full payment is charged for the whole horizon, even
	// after the balance reaches zero
	payment := p.annualPayment
	interest := s.MortgageBalance.Mul(in.InterestRate.Div(hundred))
	principal := payment.Sub(interest)
	s.MortgageBalance = decimal.Max(decimal.Zero, s.MortgageBalance.Sub(principal))

	// appreciation
	s.HomeValue = s.HomeValue.Mul(one.Add(in.AnnualHomeValueIncrease.Div(hundred)))

	// PMI removal never reverts
	if !s.PMIRemoved {
		ltv := housing.PMIRemovalLTV
		if s.MortgageBalance.LessThanOrEqual(in.HomePrice.Mul(ltv)) ||
			s.MortgageBalance.LessThanOrEqual(s.HomeValue.Mul(ltv)) {
			s.PMIRemoved = true
		}
	}
	pmiCost := decimal.Zero
	if p.pmi.PMIRequired && !s.PMIRemoved {
		pmiCost = p.pmi.AnnualPMI
	}

	inflation := growth(in.AnnualInflation, year-1)
	maintenance := s.HomeValue.
		Mul(in.AnnualMaintenancePercent.Div(hundred)).
		Mul(p.location.CostOfLiving).
		Mul(inflation)
	additional := in.MonthlyAdditionalExpenses.Mul(twelve).Mul(inflation)

	// a zero balance falls back to the initial loan
	benefit := p.engine.CalculateTaxBenefits(TaxBenefitInputs{
		HomePrice:          in.HomePrice,
		DownPaymentPercent: in.DownPaymentPercent,
		InterestRate:       in.InterestRate,
		PropertyTaxRate:    p.propertyTaxRate,
		AnnualIncome:       in.AnnualIncome,
		MaritalStatus:      in.MaritalStatus,
		MortgageBalance:    s.MortgageBalance,
	})

	buying := payment.
		Add(p.annualPropertyTax).
		Add(p.annualInsurance).
		Add(pmiCost).
		Add(p.annualHOA).
		Add(maintenance).
		Add(additional).
		Sub(benefit.AnnualTaxSavings)
	s.CumulativeBuyingCost = s.CumulativeBuyingCost.Add(buying)
	s.TotalTaxSavings = s.TotalTaxSavings.Add(benefit.AnnualTaxSavings)
	equity := s.Equity()

	rent := s.MonthlyRent
	rentersInsurance := in.MonthlyRentersInsurance.Mul(twelve)
	renting := rent.Mul(twelve).Add(rentersInsurance)
	s.CumulativeRentingCost = s.CumulativeRentingCost.Add(renting)

	// the renter only ever invests a surplus; the account compounds every year
	monthlyDiff := buying.Sub(renting).Div(twelve)
	if monthlyDiff.IsPositive() {
		s.InvestmentBalance = s.InvestmentBalance.Add(monthlyDiff.Mul(twelve))
	}
	s.InvestmentBalance = s.InvestmentBalance.Mul(one.Add(in.AnnualReturnOnSavings.Div(hundred)))

	s.MonthlyRent = rent.Mul(one.Add(in.AnnualRentIncrease.Div(hundred)))

	result := domain.YearResult{
		Year:                  year,
		BuyingCumulativeCost:  roundCents(s.CumulativeBuyingCost),
		RentingCumulativeCost: roundCents(s.CumulativeRentingCost),
		BuyingEquity:          roundCents(equity),
		BuyingNetCost:         roundCents(s.CumulativeBuyingCost.Sub(equity)),

		HomeValue:         roundCents(s.HomeValue),
		MortgageBalance:   roundCents(s.MortgageBalance),
		MortgagePayment:   roundCents(payment),
		InterestPaid:      roundCents(interest),
		PrincipalPaid:     roundCents(principal),
		PMICost:           roundCents(pmiCost),
		PMIRemoved:        s.PMIRemoved,
		MaintenanceCost:   roundCents(maintenance),
		AdditionalCost:    roundCents(additional),
		TaxSavings:        roundCents(benefit.AnnualTaxSavings),
		AnnualBuyingCost:  roundCents(buying),
		AnnualRentingCost: roundCents(renting),
		MonthlyRent:       roundCents(rent),
		RentersInsurance:  roundCents(rentersInsurance),
		InvestmentBalance: roundCents(s.InvestmentBalance),
	}
	return s, result
}

// Summarize turns the final state into the lifetime summary
func (p *Projection) Summarize(final domain.SimulationState) domain.ProjectionSummary {
	selling := final.HomeValue.
		Mul(p.engine.Policy.Housing.SellingCostRate).
		Mul(p.location.CostOfLiving)
	equity := final.Equity()

	return domain.ProjectionSummary{
		TotalBuyingCost:   roundCents(final.CumulativeBuyingCost),
		TotalRentingCost:  roundCents(final.CumulativeRentingCost),
		FinalHomeValue:    roundCents(final.HomeValue),
		FinalEquity:       roundCents(equity),
		SellingCosts:      roundCents(selling),
		NetBuyingCost:     roundCents(final.CumulativeBuyingCost.Sub(equity).Add(selling)),
		InvestmentBalance: roundCents(final.InvestmentBalance),
		TotalTaxSavings:   roundCents(final.TotalTaxSavings),
	}
}

// CalculateRentVsBuy folds Step over the time horizon. Inputs are assumed to
// have passed ValidateInputs; degenerate values produce degenerate numbers,
// never a panic.
func (ce *CalculationEngine) CalculateRentVsBuy(in domain.ProjectionInputs) domain.ProjectionResult {
	p := ce.NewProjection(in)
	state := p.Initial()

	horizon := in.TimeHorizon
	if horizon < 0 {
		horizon = 0
	}
	results := make([]domain.YearResult, 0, horizon)
	for year := 1; year <= horizon; year++ {
		var yr domain.YearResult
		state, yr = p.Step(state, year)
		results = append(results, yr)
		ce.Logger.Debugf("year %d: buying net %s, renting %s, balance %s",
			year, yr.BuyingNetCost.StringFixed(2), yr.RentingCumulativeCost.StringFixed(2), yr.MortgageBalance.StringFixed(2))
	}

	return domain.ProjectionResult{
		Results:       results,
		Summary:       p.Summarize(state),
		BreakEvenYear: BreakEvenYear(results),
	}
}

// BreakEvenYear returns the first year whose net buying cost is at or below
// the cumulative renting cost. The renter's investment account is not
// part of the comparison.
func BreakEvenYear(results []domain.YearResult) *int {
	for _, r := range results {
		if r.BuyingNetCost.LessThanOrEqual(r.RentingCumulativeCost) {
			year := r.Year
			return &year
		}
	}
	return nil
}
