package transform

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func percentInRange(name, field string, value, min, max decimal.Decimal) error {
	if value.LessThan(min) || value.GreaterThan(max) {
		return NewTransformError(name, "validate",
			fmt.Sprintf("%s must be between %s%% and %s%%, got %s", field, min, max, value), nil)
	}
	return nil
}

// SetDownPayment replaces the down payment percentage.
type SetDownPayment struct {
	Percent decimal.Decimal
}

func (sd *SetDownPayment) Name() string {
	return "set_down_payment"
}

func (sd *SetDownPayment) Description() string {
	return fmt.Sprintf("Put %s%% down", sd.Percent)
}

func (sd *SetDownPayment) Validate(base domain.ProjectionInputs) error {
	return percentInRange(sd.Name(), "down payment", sd.Percent, decimal.Zero, hundred)
}

func (sd *SetDownPayment) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.DownPaymentPercent = sd.Percent
	return modified, nil
}

// AdjustInterestRate shifts the mortgage rate by a number of percentage points.
// The result is floored at zero.
type AdjustInterestRate struct {
	Delta decimal.Decimal
}

func (ai *AdjustInterestRate) Name() string {
	return "adjust_interest_rate"
}

func (ai *AdjustInterestRate) Description() string {
	if ai.Delta.IsNegative() {
		return fmt.Sprintf("Lower the interest rate by %s points", ai.Delta.Neg())
	}
	return fmt.Sprintf("Raise the interest rate by %s points", ai.Delta)
}

func (ai *AdjustInterestRate) Validate(base domain.ProjectionInputs) error {
	if ai.Delta.Abs().GreaterThan(decimal.NewFromInt(30)) {
		return NewTransformError(ai.Name(), "validate", fmt.Sprintf("delta %s is out of range", ai.Delta), nil)
	}
	return nil
}

func (ai *AdjustInterestRate) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.InterestRate = decimal.Max(decimal.Zero, base.InterestRate.Add(ai.Delta))
	return modified, nil
}

// SetHomePrice replaces the purchase price.
type SetHomePrice struct {
	Price decimal.Decimal
}

func (sp *SetHomePrice) Name() string {
	return "set_home_price"
}

func (sp *SetHomePrice) Description() string {
	return fmt.Sprintf("Set the home price to %s", sp.Price.StringFixed(2))
}

func (sp *SetHomePrice) Validate(base domain.ProjectionInputs) error {
	if !sp.Price.IsPositive() {
		return NewTransformError(sp.Name(), "validate", fmt.Sprintf("price must be positive, got %s", sp.Price), nil)
	}
	return nil
}

func (sp *SetHomePrice) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.HomePrice = sp.Price
	return modified, nil
}

// SetTimeHorizon changes the number of simulated years.
type SetTimeHorizon struct {
	Years int
}

func (st *SetTimeHorizon) Name() string {
	return "set_time_horizon"
}

func (st *SetTimeHorizon) Description() string {
	return fmt.Sprintf("Project %d years", st.Years)
}

func (st *SetTimeHorizon) Validate(base domain.ProjectionInputs) error {
	if st.Years < 1 || st.Years > 50 {
		return NewTransformError(st.Name(), "validate", fmt.Sprintf("years must be between 1 and 50, got %d", st.Years), nil)
	}
	return nil
}

func (st *SetTimeHorizon) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.TimeHorizon = st.Years
	return modified, nil
}

// SetMortgageTerm changes the loan term.
type SetMortgageTerm struct {
	Years int
}

func (sm *SetMortgageTerm) Name() string {
	return "set_mortgage_term"
}

func (sm *SetMortgageTerm) Description() string {
	return fmt.Sprintf("Use a %d-year mortgage", sm.Years)
}

func (sm *SetMortgageTerm) Validate(base domain.ProjectionInputs) error {
	if sm.Years < 5 || sm.Years > 50 {
		return NewTransformError(sm.Name(), "validate", fmt.Sprintf("term must be between 5 and 50 years, got %d", sm.Years), nil)
	}
	return nil
}

func (sm *SetMortgageTerm) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.MortgageTerm = sm.Years
	return modified, nil
}

// SetRent replaces the starting monthly rent.
type SetRent struct {
	Monthly decimal.Decimal
}

func (sr *SetRent) Name() string {
	return "set_rent"
}

func (sr *SetRent) Description() string {
	return fmt.Sprintf("Set the monthly rent to %s", sr.Monthly.StringFixed(2))
}

func (sr *SetRent) Validate(base domain.ProjectionInputs) error {
	if !sr.Monthly.IsPositive() {
		return NewTransformError(sr.Name(), "validate", fmt.Sprintf("rent must be positive, got %s", sr.Monthly), nil)
	}
	return nil
}

func (sr *SetRent) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.MonthlyRent = sr.Monthly
	return modified, nil
}

// SetAppreciation replaces the yearly home value change.
type SetAppreciation struct {
	Percent decimal.Decimal
}

func (sa *SetAppreciation) Name() string {
	return "set_appreciation"
}

func (sa *SetAppreciation) Description() string {
	return fmt.Sprintf("Assume %s%% yearly home value change", sa.Percent)
}

func (sa *SetAppreciation) Validate(base domain.ProjectionInputs) error {
	return percentInRange(sa.Name(), "appreciation", sa.Percent, decimal.NewFromInt(-10), decimal.NewFromInt(20))
}

func (sa *SetAppreciation) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.AnnualHomeValueIncrease = sa.Percent
	return modified, nil
}

// SetLocation moves the projection to another region.
// Any property tax override is dropped so the new region's rate applies.
type SetLocation struct {
	State string
}

func (sl *SetLocation) Name() string {
	return "set_location"
}

func (sl *SetLocation) Description() string {
	return fmt.Sprintf("Move to %s", strings.ToUpper(sl.State))
}

func (sl *SetLocation) Validate(base domain.ProjectionInputs) error {
	if strings.TrimSpace(sl.State) == "" {
		return NewTransformError(sl.Name(), "validate", "state cannot be empty", nil)
	}
	return nil
}

func (sl *SetLocation) Apply(base domain.ProjectionInputs) (domain.ProjectionInputs, error) {
	modified := base.Clone()
	modified.Location = domain.Location{State: strings.ToUpper(strings.TrimSpace(sl.State))}
	return modified, nil
}
