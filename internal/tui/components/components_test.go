package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParameterSlider_Steps(t *testing.T) {
	s := NewParameterSlider("Rate", dec("6"), dec("0"), dec("6.2"), dec("0.125"))

	assert.True(t, s.Increment())
	assert.Equal(t, "6.125", s.Value.String())
	assert.True(t, s.Increment())
	assert.Equal(t, "6.2", s.Value.String(), "clamped at max")
	assert.False(t, s.Increment())

	s.SetValue(dec("-3"))
	assert.True(t, s.Value.IsZero())
	assert.False(t, s.Decrement())
}

func TestParameterSlider_OutOfRangeValueMovesBackIn(t *testing.T) {
	s := NewParameterSlider("Price", dec("9000000"), dec("50000"), dec("5000000"), dec("10000"))
	assert.False(t, s.Increment())
	assert.True(t, s.Decrement())
	assert.Equal(t, "5000000", s.Value.String(), "one press lands on max")
	assert.True(t, s.Decrement())
	assert.Equal(t, "4990000", s.Value.String())

	low := NewParameterSlider("Price", dec("10000"), dec("50000"), dec("5000000"), dec("10000"))
	assert.False(t, low.Decrement())
	assert.True(t, low.Increment())
	assert.Equal(t, "50000", low.Value.String(), "one press lands on min")
}

func TestParameterSlider_Render(t *testing.T) {
	s := NewParameterSlider("Down", dec("20"), dec("0"), dec("100"), dec("1")).WithPlaces(1).WithUnit("%")
	assert.Equal(t, "20.0%", s.FormatValue())
	assert.InDelta(t, 0.2, s.Percentage(), 1e-9)

	line := s.SetFocused(true).RenderCompact(10)
	assert.True(t, strings.HasPrefix(line, "› "))
	assert.Contains(t, line, "20.0%")
	assert.Equal(t, 1, strings.Count(line, "●"))

	s.WithFormat(func(v decimal.Decimal) string { return "custom" })
	assert.Equal(t, "custom", s.FormatValue())
}

func TestBarLength(t *testing.T) {
	assert.Equal(t, 40, BarLength(100, 100, 40))
	assert.Equal(t, 20, BarLength(50, 100, 40))
	assert.Equal(t, 0, BarLength(-5, 100, 40), "negative values draw nothing")
	assert.Equal(t, 0, BarLength(5, 0, 40))
	assert.Equal(t, 40, BarLength(150, 100, 40))
}

func TestBarChart_Render(t *testing.T) {
	out := NewBarChart("Costs").
		WithLabels([]string{"Y1", "Y2"}).
		WithWidth(10).
		AddSeries("buy", []float64{10, 20}, "#fff").
		AddSeries("rent", []float64{5, -1}, "#000").
		Render()

	assert.Contains(t, out, "Costs")
	// bars plus one legend glyph per series
	assert.Equal(t, 5+10+1, strings.Count(out, "█"), "buy bars scaled to the largest value")
	assert.Equal(t, 3+1, strings.Count(out, "▒"), "negative rent draws no bar")
	assert.Contains(t, out, "Legend: ")
	assert.Contains(t, out, "$20")

	assert.Contains(t, NewBarChart("x").Render(), "No data")
}

func TestFormatChartValue(t *testing.T) {
	assert.Equal(t, "$1.5M", FormatChartValue(1500000))
	assert.Equal(t, "$24K", FormatChartValue(24360))
	assert.Equal(t, "$-950", FormatChartValue(-950))
}

func TestSummaryCard(t *testing.T) {
	card := SummaryCard("After 10 years", []*MetricCard{
		NewMetricCard("Payment", "$2,398.20"),
		NewMetricCard("Verdict", "$1.00").WithTrend(true, true, "buying is cheaper"),
	}, 0)

	assert.Contains(t, card, "After 10 years")
	assert.Contains(t, card, "Payment:")
	assert.Contains(t, card, "▲ buying is cheaper")
}
