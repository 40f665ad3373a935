package calculation

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/policy"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// CalculationEngine runs every calculation against one tax-year policy
// and one location table
type CalculationEngine struct {
	Policy    *domain.TaxYearPolicy
	Locations *domain.LocationTable
	Logger    Logger
}

// NewCalculationEngine creates an engine using the latest embedded tax year
func NewCalculationEngine() *CalculationEngine {
	reg := policy.Default()
	return NewCalculationEngineWithPolicy(reg.Latest(), reg.Locations())
}

// NewCalculationEngineForYear creates an engine for a specific embedded tax year
func NewCalculationEngineForYear(year int) (*CalculationEngine, error) {
	reg := policy.Default()
	p, err := reg.Year(year)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return NewCalculationEngineWithPolicy(p, reg.Locations()), nil
}

// NewCalculationEngineWithPolicy creates an engine over explicit tables
func NewCalculationEngineWithPolicy(p *domain.TaxYearPolicy, locations *domain.LocationTable) *CalculationEngine {
	return &CalculationEngine{
		Policy:    p,
		Locations: locations,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CostOfLivingAdjustment returns the location rates for a region code.
// Unknown codes get the national baseline.
func (ce *CalculationEngine) CostOfLivingAdjustment(state string) domain.LocationRates {
	rates, ok := ce.Locations.Lookup(state)
	if !ok {
		ce.Logger.Debugf("no location data for %q, using national baseline", state)
	}
	return rates
}

// propertyTaxRate resolves the percent rate for a location, preferring the override
func (ce *CalculationEngine) propertyTaxRate(loc domain.Location) decimal.Decimal {
	if loc.PropertyTaxRate != nil {
		return *loc.PropertyTaxRate
	}
	return ce.CostOfLivingAdjustment(loc.State).PropertyTaxRate
}

// Package-level helpers run against the default engine

// CalculateRentVsBuy runs a rent-vs-buy projection with the latest tax year
func CalculateRentVsBuy(inputs domain.ProjectionInputs) domain.ProjectionResult {
	return NewCalculationEngine().CalculateRentVsBuy(inputs)
}

// ValidateInputs checks projection inputs with the latest tax year
func ValidateInputs(inputs domain.ProjectionInputs) domain.ValidationResult {
	return NewCalculationEngine().ValidateInputs(inputs)
}

// CalculateTaxResults runs the progressive tax engine with the latest tax year
func CalculateTaxResults(user domain.UserState) domain.TaxResult {
	return NewCalculationEngine().CalculateTaxResults(user)
}

// CalculatePMI computes mortgage insurance with the latest tax year's tiers
func CalculatePMI(homePrice, downPaymentPercent decimal.Decimal) domain.PMIResult {
	return NewCalculationEngine().CalculatePMI(homePrice, downPaymentPercent)
}

// CalculateTaxBenefits estimates homeowner deductions with the latest tax year
func CalculateTaxBenefits(in TaxBenefitInputs) domain.TaxBenefitResult {
	return NewCalculationEngine().CalculateTaxBenefits(in)
}

// CostOfLivingAdjustment looks up a region in the embedded location table
func CostOfLivingAdjustment(state string) domain.LocationRates {
	return NewCalculationEngine().CostOfLivingAdjustment(state)
}

func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf returns part/whole*100, or zero when whole is not positive
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// growth returns (1 + percent/100)^years
func growth(percent decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return one.Add(percent.Div(hundred)).Pow(decimal.NewFromInt(int64(years)))
}
