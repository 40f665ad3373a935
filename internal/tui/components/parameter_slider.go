package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ParameterSlider is one adjustable input with a fixed step and range
type ParameterSlider struct {
	Label     string
	Value     decimal.Decimal
	Min       decimal.Decimal
	Max       decimal.Decimal
	Step      decimal.Decimal
	Places    int32  // decimal places shown
	Unit      string // e.g. "%", " yrs"
	Format    func(decimal.Decimal) string
	IsFocused bool
}

// NewParameterSlider creates a slider. The value is kept as given even
// when outside [min, max]; adjusting moves it back into range.
func NewParameterSlider(label string, value, min, max, step decimal.Decimal) *ParameterSlider {
	return &ParameterSlider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		Step:  step,
	}
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithPlaces sets how many decimal places are displayed
func (p *ParameterSlider) WithPlaces(places int32) *ParameterSlider {
	p.Places = places
	return p
}

// WithFormat replaces the default number-plus-unit rendering
func (p *ParameterSlider) WithFormat(f func(decimal.Decimal) string) *ParameterSlider {
	p.Format = f
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment raises the value by one step, stopping at Max. A value below
// Min lands on Min. It reports whether the value changed.
func (p *ParameterSlider) Increment() bool {
	if !p.Value.LessThan(p.Max) {
		return false
	}
	p.SetValue(p.Value.Add(p.Step))
	return true
}

// Decrement lowers the value by one step, stopping at Min. A value above
// Max lands on Max.
func (p *ParameterSlider) Decrement() bool {
	if !p.Value.GreaterThan(p.Min) {
		return false
	}
	p.SetValue(p.Value.Sub(p.Step))
	return true
}

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value decimal.Decimal) {
	p.Value = decimal.Max(p.Min, decimal.Min(p.Max, value))
}

// Percentage returns the value's position in the range, between 0 and 1
func (p *ParameterSlider) Percentage() float64 {
	span := p.Max.Sub(p.Min)
	if !span.IsPositive() {
		return 0
	}
	pct := p.Value.Sub(p.Min).Div(span).InexactFloat64()
	return math.Max(0, math.Min(1, pct))
}

// FormatValue renders the current value for display
func (p *ParameterSlider) FormatValue() string {
	if p.Format != nil {
		return p.Format(p.Value)
	}
	return p.Value.StringFixed(p.Places) + p.Unit
}

// RenderCompact returns a single line: label, value and a mini slider bar
func (p *ParameterSlider) RenderCompact(labelWidth int) string {
	labelStyle := tuistyles.ParameterLabelStyle.Width(labelWidth)
	valueStyle := tuistyles.ParameterValueStyle.Width(14).Align(lipgloss.Right)
	cursor := "  "

	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		cursor = "› "
	}

	return fmt.Sprintf("%s%s %s %s", cursor, labelStyle.Render(p.Label), valueStyle.Render(p.FormatValue()), p.renderMiniSliderBar(12))
}

// renderMiniSliderBar creates a compact slider bar
func (p *ParameterSlider) renderMiniSliderBar(width int) string {
	filled := int(math.Round(float64(width-1) * p.Percentage()))

	var bar strings.Builder
	bar.WriteString("[")

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	for i := 0; i < width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}

	bar.WriteString("]")
	return bar.String()
}
