package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency formats a decimal as US currency with thousands separators:
// $1,234.56 and -$1,234.56.
func FormatCurrency(amount decimal.Decimal) string {
	cents := amount.Round(2)
	sign := ""
	if cents.IsNegative() {
		sign = "-"
	}
	return sign + printer.Sprintf("$%.2f", cents.Abs().InexactFloat64())
}

// FormatPercent formats a percent value (6.5 means 6.5%) with two decimals
func FormatPercent(percent decimal.Decimal) string {
	return percent.StringFixed(2) + "%"
}

// FormatRate formats a fractional rate (0.22) as a percent
func FormatRate(rate decimal.Decimal) string {
	return FormatPercent(rate.Mul(decimal.NewFromInt(100)))
}
