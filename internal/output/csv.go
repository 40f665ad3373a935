package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// CSVFormatter writes one row per scenario-year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *RentBuyReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Year", "HomeValue", "MortgageBalance", "Equity", "MortgagePayment", "PMICost",
		"TaxSavings", "AnnualBuyingCost", "AnnualRentingCost", "BuyingCumulativeCost",
		"RentingCumulativeCost", "BuyingNetCost", "InvestmentBalance",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range report.Scenarios {
		for _, r := range s.Result.Results {
			if err := w.Write(yearRow(s.Name, r)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yearRow(name string, r domain.YearResult) []string {
	return []string{
		name,
		strconv.Itoa(r.Year),
		r.HomeValue.StringFixed(2),
		r.MortgageBalance.StringFixed(2),
		r.BuyingEquity.StringFixed(2),
		r.MortgagePayment.StringFixed(2),
		r.PMICost.StringFixed(2),
		r.TaxSavings.StringFixed(2),
		r.AnnualBuyingCost.StringFixed(2),
		r.AnnualRentingCost.StringFixed(2),
		r.BuyingCumulativeCost.StringFixed(2),
		r.RentingCumulativeCost.StringFixed(2),
		r.BuyingNetCost.StringFixed(2),
		r.InvestmentBalance.StringFixed(2),
	}
}

// AmortizationCSV writes a loan schedule as CSV
func AmortizationCSV(rows []domain.AmortizationRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "Payment", "Principal", "Interest", "Balance"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Month),
			r.Payment.StringFixed(2),
			r.Principal.StringFixed(2),
			r.Interest.StringFixed(2),
			r.Balance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
