package domain

import "github.com/shopspring/decimal"

// FIREInputs drives the financial-independence projection.
// Rates are percent values, like ProjectionInputs.
type FIREInputs struct {
	CurrentAge     int             `yaml:"current_age" json:"currentAge"`
	CurrentSavings decimal.Decimal `yaml:"current_savings" json:"currentSavings"`
	AnnualIncome   decimal.Decimal `yaml:"annual_income" json:"annualIncome"`
	AnnualExpenses decimal.Decimal `yaml:"annual_expenses" json:"annualExpenses"`
	// AnnualSavings defaults to income minus expenses when nil
	AnnualSavings        *decimal.Decimal `yaml:"annual_savings,omitempty" json:"annualSavings,omitempty"`
	ExpectedReturn       decimal.Decimal  `yaml:"expected_return" json:"expectedReturn"`
	Inflation            decimal.Decimal  `yaml:"inflation" json:"inflation"`
	WithdrawalRate       decimal.Decimal  `yaml:"withdrawal_rate" json:"withdrawalRate"`
	MaxAge               int              `yaml:"max_age,omitempty" json:"maxAge,omitempty"`
	TraditionalRetireAge int              `yaml:"traditional_retire_age,omitempty" json:"traditionalRetireAge,omitempty"`
}

// FIREYear is one row of the FIRE projection
type FIREYear struct {
	Year           int             `json:"year" yaml:"year"`
	Age            int             `json:"age" yaml:"age"`
	Contribution   decimal.Decimal `json:"contribution" yaml:"contribution"`
	AnnualExpenses decimal.Decimal `json:"annualExpenses" yaml:"annual_expenses"`
	FIRENumber     decimal.Decimal `json:"fireNumber" yaml:"fire_number"`
	Portfolio      decimal.Decimal `json:"portfolio" yaml:"portfolio"`
	Reached        bool            `json:"reached" yaml:"reached"`
}

// FIREResult summarizes when (and whether) the portfolio covers expenses
type FIREResult struct {
	FIRENumber      decimal.Decimal `json:"fireNumber" yaml:"fire_number"`
	LeanFIRENumber  decimal.Decimal `json:"leanFireNumber" yaml:"lean_fire_number"`
	FatFIRENumber   decimal.Decimal `json:"fatFireNumber" yaml:"fat_fire_number"`
	CoastFIRENumber decimal.Decimal `json:"coastFireNumber" yaml:"coast_fire_number"`
	AnnualSavings   decimal.Decimal `json:"annualSavings" yaml:"annual_savings"`
	SavingsRate     decimal.Decimal `json:"savingsRate" yaml:"savings_rate"`
	YearsToFIRE     *int            `json:"yearsToFire" yaml:"years_to_fire"`
	FIREAge         *int            `json:"fireAge" yaml:"fire_age"`
	Projection      []FIREYear      `json:"projection" yaml:"projection"`
}
