package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		in   string
		want FilingStatus
	}{
		{"single", FilingSingle},
		{"", FilingSingle},
		{"MFJ", FilingMarriedJoint},
		{"married", FilingMarriedJoint},
		{"married_separate", FilingMarriedSeparate},
		{"head-of-household", FilingHeadOfHousehold},
	}
	for _, tt := range tests {
		got, err := ParseFilingStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFilingStatus("widowed")
	assert.Error(t, err)
}

func TestMaritalStatus_FilingStatus(t *testing.T) {
	assert.Equal(t, FilingMarriedJoint, MaritalMarried.FilingStatus())
	assert.Equal(t, FilingSingle, MaritalSingle.FilingStatus())
	assert.Equal(t, FilingSingle, MaritalStatus("").FilingStatus())
}

func TestAccountKind_Classification(t *testing.T) {
	assert.True(t, Account401k.PreTax())
	assert.True(t, AccountIRATraditional.PreTax())
	assert.True(t, AccountHSA.PreTax())
	assert.False(t, AccountIRARoth.PreTax())

	assert.Equal(t, LimitIRA, AccountIRATraditional.LimitGroup())
	assert.Equal(t, LimitIRA, AccountIRARoth.LimitGroup())
	assert.Equal(t, Limit401k, Account401k.LimitGroup())
	assert.Equal(t, LimitHSA, AccountHSA.LimitGroup())

	assert.True(t, AccountHSA.Valid())
	assert.False(t, AccountKind("529").Valid())
}

func TestContributionLimits_For(t *testing.T) {
	limits := ContributionLimits{
		K401:      decimal.NewFromInt(23500),
		IRA:       decimal.NewFromInt(7000),
		HSASelf:   decimal.NewFromInt(4300),
		HSAFamily: decimal.NewFromInt(8550),
	}

	assert.True(t, limits.For(Limit401k, HSANone).Equal(decimal.NewFromInt(23500)))
	assert.True(t, limits.For(LimitIRA, HSANone).Equal(decimal.NewFromInt(7000)))
	assert.True(t, limits.For(LimitHSA, HSASelf).Equal(decimal.NewFromInt(4300)))
	assert.True(t, limits.For(LimitHSA, HSAFamily).Equal(decimal.NewFromInt(8550)))
	assert.True(t, limits.For(LimitHSA, HSANone).IsZero())
	assert.True(t, limits.For(LimitHSA, "").Equal(decimal.NewFromInt(4300)))
}

func TestTaxBracket_Contains(t *testing.T) {
	top := decimal.NewFromInt(48475)
	bounded := TaxBracket{Min: decimal.NewFromInt(11925), Max: &top, Rate: decimal.NewFromFloat(0.12)}
	open := TaxBracket{Min: decimal.NewFromInt(626350), Rate: decimal.NewFromFloat(0.37)}

	assert.True(t, bounded.Contains(decimal.NewFromInt(11925)))
	assert.True(t, bounded.Contains(decimal.NewFromInt(48474)))
	assert.False(t, bounded.Contains(decimal.NewFromInt(48475)))
	assert.False(t, bounded.Contains(decimal.NewFromInt(100)))
	assert.True(t, open.Contains(decimal.NewFromInt(10000000)))
}

func TestLocationTable_Lookup(t *testing.T) {
	table := &LocationTable{
		Baseline: LocationRates{Name: "National", CostOfLiving: decimal.NewFromInt(1)},
		Regions: map[string]LocationRates{
			"CA": {Name: "California", CostOfLiving: decimal.NewFromFloat(1.38)},
		},
	}

	rates, ok := table.Lookup(" ca ")
	assert.True(t, ok)
	assert.Equal(t, "California", rates.Name)

	rates, ok = table.Lookup("ZZ")
	assert.False(t, ok)
	assert.Equal(t, "National", rates.Name)

	var missing *LocationTable
	_, ok = missing.Lookup("CA")
	assert.False(t, ok)
}

func TestProjectionInputs_CloneAndLoan(t *testing.T) {
	rate := decimal.NewFromFloat(1.1)
	in := DefaultProjectionInputs()
	in.Location.PropertyTaxRate = &rate

	clone := in.Clone()
	*clone.Location.PropertyTaxRate = decimal.NewFromInt(5)

	assert.True(t, in.Location.PropertyTaxRate.Equal(decimal.NewFromFloat(1.1)))
	assert.True(t, in.LoanAmount().Equal(decimal.NewFromInt(400000)))
}

func TestConfiguration_FindScenario(t *testing.T) {
	cfg := &Configuration{Scenarios: []Scenario{{Name: "base"}, {Name: "condo"}}}

	s, ok := cfg.FindScenario("condo")
	require.True(t, ok)
	assert.Equal(t, "condo", s.Name)

	_, ok = cfg.FindScenario("ranch")
	assert.False(t, ok)
	assert.Equal(t, []string{"base", "condo"}, cfg.ScenarioNames())
}
