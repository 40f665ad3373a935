package config

import (
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_YAMLScenariosOverlayDefaults(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2025, config.TaxYear)
	assert.Equal(t, []string{"base", "cheaper-house", "move-to-texas"}, config.ScenarioNames())

	base, ok := config.FindScenario("base")
	require.True(t, ok)
	assert.True(t, base.Inputs.HomePrice.Equal(decimal.NewFromInt(650000)))
	assert.True(t, base.Inputs.MonthlyHOAFees.Equal(decimal.NewFromInt(150)))
	require.NotNil(t, base.Inputs.Location.PropertyTaxRate)
	assert.Equal(t, "1.1", base.Inputs.Location.PropertyTaxRate.String())

	cheaper, _ := config.FindScenario("cheaper-house")
	assert.True(t, cheaper.Inputs.HomePrice.Equal(decimal.NewFromInt(520000)), "scenario field overrides default")
	assert.True(t, cheaper.Inputs.DownPaymentPercent.Equal(decimal.NewFromInt(10)))
	assert.True(t, cheaper.Inputs.MonthlyRent.Equal(decimal.NewFromInt(3000)), "unset fields keep the default")
	assert.Equal(t, "Smaller place, less down", cheaper.Description)

	texas, _ := config.FindScenario("move-to-texas")
	assert.Equal(t, "TX", texas.Inputs.Location.State)
	assert.Equal(t, "1.8", texas.Inputs.Location.PropertyTaxRate.String())
	assert.Equal(t, 15, texas.Inputs.MortgageTerm, "transforms run after overrides")
	assert.Equal(t, "5.75", texas.Inputs.InterestRate.String())
	assert.Len(t, texas.Transforms, 2)

	assert.Equal(t, "1.1", config.Defaults.Location.PropertyTaxRate.String(), "scenario overrides never leak into defaults")
	assert.Equal(t, "1.1", base.Inputs.Location.PropertyTaxRate.String())
}

func TestLoadFromFile_JSON(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "scenarios.json"))
	require.NoError(t, err)

	require.Len(t, config.Scenarios, 2)
	base := config.Scenarios[0].Inputs
	assert.Equal(t, "WA", base.Location.State)
	assert.Equal(t, domain.MaritalMarried, base.MaritalStatus)
	assert.Equal(t, 15, base.TimeHorizon)
	assert.Equal(t, 30, base.MortgageTerm, "missing fields fall back to built-in defaults")
	assert.Nil(t, base.Location.PropertyTaxRate)

	assert.True(t, config.Scenarios[1].Inputs.MonthlyRent.Equal(decimal.NewFromInt(3200)))
}

func TestLoadFromFile_DefaultsOnlySynthesizesBase(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "defaults_only.yaml"))
	require.NoError(t, err)

	require.Len(t, config.Scenarios, 1)
	assert.Equal(t, "base", config.Scenarios[0].Name)
	assert.Equal(t, "OR", config.Scenarios[0].Inputs.Location.State)
	assert.True(t, config.Scenarios[0].Inputs.HomePrice.Equal(decimal.NewFromInt(450000)))
}

func TestLoadFromFile_TaxAndFIRE(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "tax_fire.yaml"))
	require.NoError(t, err)

	assert.Empty(t, config.Scenarios)
	require.NotNil(t, config.Tax)
	assert.Equal(t, domain.FilingMarriedJoint, config.Tax.FilingStatus, "aliases are normalized")
	require.Len(t, config.Tax.IncomeSources, 2)
	assert.Equal(t, domain.IncomeSelfEmployment, config.Tax.IncomeSources[1].Category)
	assert.True(t, config.Tax.Contribution(domain.Account401k).Equal(decimal.NewFromInt(15000)))
	assert.True(t, config.Tax.Contribution(domain.AccountIRARoth).Equal(decimal.NewFromInt(7000)))
	assert.Equal(t, domain.HSAFamily, config.Tax.HSACoverage)

	require.NotNil(t, config.FIRE)
	assert.Equal(t, 32, config.FIRE.CurrentAge)
	assert.Nil(t, config.FIRE.AnnualSavings)
	assert.True(t, config.FIRE.AnnualExpenses.Equal(decimal.NewFromInt(55000)))
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		message string
	}{
		{"missing file", "does_not_exist.yaml", "failed to read file"},
		{"duplicate names", "duplicate_names.yaml", "duplicate name \"a\""},
		{"invalid transform", "bad_transform.yaml", "scenario 0 (broken) transforms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().LoadFromFile(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"empty document", "{}", "no scenarios provided"},
		{"malformed", "scenarios: [", "failed to parse YAML"},
		{"missing name", "scenarios:\n  - description: nameless\n", "scenario 0 () validation failed: name is required"},
		{"zero horizon", "scenarios:\n  - name: x\n    inputs:\n      time_horizon: 0\n", "time horizon must be positive"},
		{"zero term", "scenarios:\n  - name: x\n    inputs:\n      mortgage_term: 0\n", "mortgage term must be positive"},
		{"marital status", "scenarios:\n  - name: x\n    inputs:\n      marital_status: divorced\n", "marital status must be single or married"},
		{"bad decimal", "scenarios:\n  - name: x\n    inputs:\n      home_price: lots\n", "scenario 0 (x) inputs"},
		{"unknown account", "tax:\n  contributions:\n    \"529\": 100\n", "unknown account kind"},
		{"unknown category", "tax:\n  income_sources:\n    - name: x\n      category: lottery\n      amount: 5\n", "unknown category"},
		{"unknown filing status", "tax:\n  filing_status: widowed\n", "unknown filing status"},
		{"fire age", "fire:\n  current_age: 0\n", "current age must be positive"},
		{"fire max age", "fire:\n  current_age: 50\n  max_age: 40\n", "max age must be greater than current age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse_TaxDefaultsToSingle(t *testing.T) {
	config, err := NewInputParser().Parse([]byte("tax:\n  state: TX\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.FilingSingle, config.Tax.FilingStatus)
}
