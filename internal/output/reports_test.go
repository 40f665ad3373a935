package output

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTaxReport(t *testing.T) {
	rate := decimal.NewFromInt(5)
	result := calculation.CalculateTaxResults(domain.UserState{
		FilingStatus: domain.FilingSingle,
		StateTaxRate: &rate,
		IncomeSources: []domain.IncomeSource{
			{Name: "Salary", Category: domain.IncomeWages, Amount: decimal.NewFromInt(100000)},
		},
	})

	text := string(FormatTaxReport(result))
	assert.Contains(t, text, "TAX ESTIMATE (2025, single)")
	assert.Contains(t, text, "Taxable Income:        $85,000.00")
	assert.Contains(t, text, "Federal:               $13,614.00")
	assert.Contains(t, text, "Marginal Rate:         22.00%")
	assert.Contains(t, text, "Effective Rate:        25.51%")
	assert.Contains(t, text, "Unused 401k:")
	assert.Contains(t, text, "TIPS:")
	assert.NotContains(t, text, "Self-employment:", "no SE line without SE income")
}

func TestFormatFIREReport(t *testing.T) {
	result := calculation.CalculateFIRE(domain.FIREInputs{
		CurrentAge:     30,
		CurrentSavings: decimal.NewFromInt(100000),
		AnnualIncome:   decimal.NewFromInt(100000),
		AnnualExpenses: decimal.NewFromInt(40000),
		ExpectedReturn: decimal.NewFromInt(7),
		Inflation:      decimal.NewFromInt(3),
		WithdrawalRate: decimal.NewFromInt(4),
	})

	text := string(FormatFIREReport(result))
	assert.Contains(t, text, "FIRE Number:       $1,000,000.00")
	assert.Contains(t, text, "Years to FIRE:     ")
	assert.Equal(t, 1, strings.Count(text, " *\n"), "only the reaching year is marked")

	unreachable := domain.FIREResult{}
	assert.Contains(t, string(FormatFIREReport(unreachable)), "not reached")
}

func TestFormatAmortization(t *testing.T) {
	rows := calculation.AmortizationSchedule(decimal.NewFromInt(500000), decimal.NewFromInt(20), decimal.NewFromInt(6), 30)
	require.Len(t, rows, 360)

	monthly := strings.Split(strings.TrimSpace(string(FormatAmortization(rows, false))), "\n")
	assert.Len(t, monthly, 2+360+2, "header, rule, rows, blank line and totals")

	yearly := strings.Split(strings.TrimSpace(string(FormatAmortization(rows, true))), "\n")
	assert.Len(t, yearly, 2+30+2)
	assert.True(t, strings.HasPrefix(yearly[2], "1 "))
	assert.Contains(t, yearly[len(yearly)-1], "Payments: 360")

	data, err := AmortizationCSV(rows[:3])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "Month,Payment,Principal,Interest,Balance", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,2398.20,398.20,2000.00,"))
}
