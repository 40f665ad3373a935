package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaritalStatus is the household status used by the rent-vs-buy tax benefit estimate
type MaritalStatus string

const (
	MaritalSingle  MaritalStatus = "single"
	MaritalMarried MaritalStatus = "married"
)

// FilingStatus maps the marital status onto the federal filing status tables.
// Married households are assumed to file jointly.
func (m MaritalStatus) FilingStatus() FilingStatus {
	if m == MaritalMarried {
		return FilingMarriedJoint
	}
	return FilingSingle
}

// Location identifies the region a projection is run for
type Location struct {
	State string `yaml:"state" json:"state"`
	// PropertyTaxRate overrides the location table's property tax rate (percent)
	PropertyTaxRate *decimal.Decimal `yaml:"property_tax_rate,omitempty" json:"propertyTaxRate,omitempty"`
}

// StateCode returns the normalized (upper-case, trimmed) region code
func (l Location) StateCode() string {
	return strings.ToUpper(strings.TrimSpace(l.State))
}

// ProjectionInputs holds everything a single rent-vs-buy projection needs.
// All rates are percent values: 6 means 6%.
type ProjectionInputs struct {
	Location      Location        `yaml:"location" json:"location"`
	MaritalStatus MaritalStatus   `yaml:"marital_status" json:"maritalStatus"`
	AnnualIncome  decimal.Decimal `yaml:"annual_income" json:"annualIncome"`

	MonthlyRent             decimal.Decimal `yaml:"monthly_rent" json:"monthlyRent"`
	AnnualRentIncrease      decimal.Decimal `yaml:"annual_rent_increase" json:"annualRentIncrease"`
	MonthlyRentersInsurance decimal.Decimal `yaml:"monthly_renters_insurance" json:"monthlyRentersInsurance"`

	HomePrice                 decimal.Decimal `yaml:"home_price" json:"homePrice"`
	DownPaymentPercent        decimal.Decimal `yaml:"down_payment_percent" json:"downPaymentPercent"`
	InterestRate              decimal.Decimal `yaml:"interest_rate" json:"interestRate"`
	MortgageTerm              int             `yaml:"mortgage_term" json:"mortgageTerm"`
	HomeInsuranceRate         decimal.Decimal `yaml:"home_insurance_rate" json:"homeInsuranceRate"`
	MonthlyHOAFees            decimal.Decimal `yaml:"monthly_hoa_fees" json:"monthlyHOAFees"`
	AnnualMaintenancePercent  decimal.Decimal `yaml:"annual_maintenance_percent" json:"annualMaintenancePercent"`
	MonthlyAdditionalExpenses decimal.Decimal `yaml:"monthly_additional_expenses" json:"monthlyAdditionalExpenses"`
	AnnualHomeValueIncrease   decimal.Decimal `yaml:"annual_home_value_increase" json:"annualHomeValueIncrease"`

	TimeHorizon           int             `yaml:"time_horizon" json:"timeHorizon"`
	AnnualInflation       decimal.Decimal `yaml:"annual_inflation" json:"annualInflation"`
	AnnualReturnOnSavings decimal.Decimal `yaml:"annual_return_on_savings" json:"annualReturnOnSavings"`
}

// Clone returns a copy that shares no pointers with the receiver
func (pi ProjectionInputs) Clone() ProjectionInputs {
	out := pi
	if pi.Location.PropertyTaxRate != nil {
		rate := *pi.Location.PropertyTaxRate
		out.Location.PropertyTaxRate = &rate
	}
	return out
}

// LoanAmount is the financed portion of the home price
func (pi ProjectionInputs) LoanAmount() decimal.Decimal {
	return pi.HomePrice.Mul(decimal.NewFromInt(1).Sub(pi.DownPaymentPercent.Div(decimal.NewFromInt(100))))
}

// DefaultProjectionInputs returns a reasonable starting point for interactive use
func DefaultProjectionInputs() ProjectionInputs {
	return ProjectionInputs{
		Location:                  Location{State: "CA"},
		MaritalStatus:             MaritalSingle,
		AnnualIncome:              decimal.NewFromInt(150000),
		MonthlyRent:               decimal.NewFromInt(2000),
		AnnualRentIncrease:        decimal.NewFromInt(3),
		MonthlyRentersInsurance:   decimal.NewFromInt(30),
		HomePrice:                 decimal.NewFromInt(500000),
		DownPaymentPercent:        decimal.NewFromInt(20),
		InterestRate:              decimal.NewFromInt(6),
		MortgageTerm:              30,
		HomeInsuranceRate:         decimal.NewFromFloat(0.5),
		MonthlyHOAFees:            decimal.Zero,
		AnnualMaintenancePercent:  decimal.NewFromInt(1),
		MonthlyAdditionalExpenses: decimal.Zero,
		AnnualHomeValueIncrease:   decimal.NewFromInt(3),
		TimeHorizon:               10,
		AnnualInflation:           decimal.NewFromInt(3),
		AnnualReturnOnSavings:     decimal.NewFromInt(6),
	}
}
