package calculation

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputs_DefaultsAreValid(t *testing.T) {
	result := ValidateInputs(domain.DefaultProjectionInputs())

	assert.True(t, result.IsValid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.Errors, "errors should be an empty list, not nil")
}

func TestValidateInputs_DoesNotShortCircuit(t *testing.T) {
	in := domain.DefaultProjectionInputs()
	in.MonthlyRent = decimal.Zero
	in.HomePrice = decimal.Zero
	in.InterestRate = d("50")

	result := ValidateInputs(in)

	assert.False(t, result.IsValid)
	require.GreaterOrEqual(t, len(result.Errors), 3, "one error per violated rule")
	assert.Contains(t, result.Errors, "Monthly rent must be greater than 0")
	assert.Contains(t, result.Errors, "Home price must be greater than 0")
	assert.Contains(t, result.Errors, "Interest rate must be between 0% and 30%")
	assert.Equal(t, "Monthly rent must be greater than 0", result.Errors[0], "errors are reported in check order")
}

func TestValidateInputs_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ProjectionInputs)
		message string
	}{
		{"down payment above 100", func(in *domain.ProjectionInputs) { in.DownPaymentPercent = d("101") }, "Down payment must be between 0% and 100%"},
		{"negative appreciation", func(in *domain.ProjectionInputs) { in.AnnualHomeValueIncrease = d("-10.5") }, "Home value increase must be between -10% and 20%"},
		{"rent increase", func(in *domain.ProjectionInputs) { in.AnnualRentIncrease = d("21") }, "Rent increase must be between 0% and 20%"},
		{"inflation", func(in *domain.ProjectionInputs) { in.AnnualInflation = d("16") }, "Inflation rate must be between 0% and 15%"},
		{"investment return", func(in *domain.ProjectionInputs) { in.AnnualReturnOnSavings = d("-1") }, "Investment return must be between 0% and 30%"},
		{"zero horizon", func(in *domain.ProjectionInputs) { in.TimeHorizon = 0 }, "Time horizon must be between 1 and 50 years"},
		{"long horizon", func(in *domain.ProjectionInputs) { in.TimeHorizon = 51 }, "Time horizon must be between 1 and 50 years"},
		{"short term", func(in *domain.ProjectionInputs) { in.MortgageTerm = 4 }, "Mortgage term must be between 5 and 50 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.DefaultProjectionInputs()
			tt.mutate(&in)
			result := ValidateInputs(in)
			assert.False(t, result.IsValid)
			assert.Contains(t, result.Errors, tt.message)
		})
	}
}

func TestValidateInputs_BoundariesAreInclusive(t *testing.T) {
	in := domain.DefaultProjectionInputs()
	in.AnnualIncome = d("1000000")
	in.DownPaymentPercent = d("100")
	in.InterestRate = d("30")
	in.AnnualHomeValueIncrease = d("-10")
	in.TimeHorizon = 50
	in.MortgageTerm = 5

	result := ValidateInputs(in)
	assert.True(t, result.IsValid, "errors: %v", result.Errors)
}

func TestValidateInputs_Affordability(t *testing.T) {
	in := domain.DefaultProjectionInputs()
	in.AnnualIncome = d("30000")

	result := ValidateInputs(in)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "Total monthly housing costs (")
	assert.Contains(t, result.Errors[0], "exceed the recommended maximum of 45%")
	assert.Equal(t, "Monthly rent (80.0% of monthly income) exceeds the recommended maximum of 35%", result.Errors[1])
}

func TestValidateInputs_ZeroIncomeSkipsAffordability(t *testing.T) {
	in := domain.DefaultProjectionInputs()
	in.AnnualIncome = decimal.Zero

	result := ValidateInputs(in)
	assert.Equal(t, []string{"Annual income must be greater than 0"}, result.Errors)
}
