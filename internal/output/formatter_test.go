package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestReport() *RentBuyReport {
	base := domain.DefaultProjectionInputs()
	pmi := base.Clone()
	pmi.DownPaymentPercent = decimal.NewFromInt(5)
	pmi.TimeHorizon = 5

	return BuildRentBuyReport(calculation.NewCalculationEngine(), []domain.Scenario{
		{Name: "base", Description: "Defaults", Inputs: base},
		{Name: "low-down", Inputs: pmi},
	})
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"999.999", "$1,000.00"},
		{"1234.56", "$1,234.56"},
		{"1234567.891", "$1,234,567.89"},
		{"100000", "$100,000.00"},
		{"-1234.56", "-$1,234.56"},
		{"-0.001", "$0.00"},
		{"-999999.995", "-$1,000,000.00"},
		{"98765432.1", "$98,765,432.10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "6.50%", FormatPercent(decimal.RequireFromString("6.5")))
	assert.Equal(t, "22.00%", FormatRate(decimal.RequireFromString("0.22")))
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "html", "json", "yaml", "JSON"} {
		f, err := GetFormatterByName(name)
		require.NoError(t, err, "format %s", name)
		assert.Equal(t, strings.ToLower(name), f.Name())
	}

	_, err := GetFormatterByName("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: console, csv, html, json, yaml")
}

func TestBuildRentBuyReport(t *testing.T) {
	report := buildTestReport()

	assert.Equal(t, 2025, report.TaxYear)
	assert.NotEmpty(t, report.Assumptions)
	require.Len(t, report.Scenarios, 2)

	base := report.Scenarios[0]
	assert.Equal(t, "base", base.Result.Name)
	assert.True(t, base.Validation.IsValid, "errors: %v", base.Validation.Errors)
	assert.Equal(t, "2398.20", base.MonthlyPayment.StringFixed(2))
	assert.False(t, base.PMI.PMIRequired)
	assert.Len(t, base.Result.Results, 10)

	low := report.Scenarios[1]
	assert.True(t, low.PMI.PMIRequired)
	assert.Len(t, low.Result.Results, 5)
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "RENT VS BUY ANALYSIS (2025 tax tables)")
	assert.Contains(t, text, "SCENARIO 1: base")
	assert.Contains(t, text, "SCENARIO 2: low-down")
	assert.Contains(t, text, "Home Price:             $500,000.00")
	assert.Contains(t, text, "PMI:                    not required")
	assert.Contains(t, text, "Break-even Year:")
	assert.Contains(t, text, "Selling costs: 6.00% of the final home value")
}

func TestConsoleFormatter_ShowsValidationWarnings(t *testing.T) {
	in := domain.DefaultProjectionInputs()
	in.AnnualIncome = decimal.NewFromInt(30000)
	report := BuildRentBuyReport(calculation.NewCalculationEngine(), []domain.Scenario{{Name: "stretch", Inputs: in}})

	out, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "INPUT WARNINGS:")
	assert.Contains(t, string(out), "exceeds the recommended maximum of 35%")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+10+5, "header plus one row per scenario-year")
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, []string{"base", "1", "515000.00"}, records[1][:3])
	assert.Equal(t, "low-down", records[15][0])
	assert.Equal(t, "5", records[15][1])
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)
	html := string(out)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<h2>base</h2>")
	assert.Contains(t, html, "$500,000.00")
	assert.Equal(t, 15, strings.Count(html, "<tr>")-2, "one table row per scenario-year")
}

func TestStructuredFormatters(t *testing.T) {
	report := buildTestReport()

	f, _ := GetFormatterByName("json")
	out, err := f.Format(report)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.EqualValues(t, 2025, decoded["taxYear"])
	assert.Len(t, decoded["scenarios"], 2)

	f, _ = GetFormatterByName("yaml")
	out, err = f.Format(report)
	require.NoError(t, err)
	var y map[string]any
	require.NoError(t, yaml.Unmarshal(out, &y))
	assert.Equal(t, 2025, y["tax_year"])

	_, err = Encode("toml", report)
	assert.Error(t, err)
}

func TestFormatterFunc(t *testing.T) {
	called := false
	f := FormatterFunc{ID: "test", F: func(r *RentBuyReport) ([]byte, error) {
		called = true
		return []byte("ok"), nil
	}}
	out, err := f.Format(&RentBuyReport{})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", string(out))
	assert.Equal(t, "test", f.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	f := FormatterFunc{ID: "txt", F: func(r *RentBuyReport) ([]byte, error) { return []byte("content"), nil }}
	filename, err := WriteFormatted(f, &RentBuyReport{}, "txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "fincalc_report_"))
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))

	broken := FormatterFunc{ID: "broken", F: func(r *RentBuyReport) ([]byte, error) { return nil, fmt.Errorf("formatter error") }}
	_, err = WriteFormatted(broken, &RentBuyReport{}, "txt")
	assert.ErrorContains(t, err, "format broken")
}

func TestBreakEvenLabel(t *testing.T) {
	year := 7
	assert.Equal(t, "year 7", BreakEvenLabel(&year, 10))
	assert.Equal(t, "not within 10 years", BreakEvenLabel(nil, 10))
}
