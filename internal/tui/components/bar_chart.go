package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// BarSeries is one set of values drawn with its own bar character
type BarSeries struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// BarChart draws grouped horizontal bars, one group per label. All series
// share one scale so bars are comparable across groups.
type BarChart struct {
	Title  string
	Series []*BarSeries
	Labels []string
	Width  int // bar area width in cells
}

// NewBarChart creates an empty chart
func NewBarChart(title string) *BarChart {
	return &BarChart{
		Title: title,
		Width: 40,
	}
}

// AddSeries adds a data series to the chart
func (c *BarChart) AddSeries(name string, values []float64, color lipgloss.Color) *BarChart {
	c.Series = append(c.Series, &BarSeries{Name: name, Values: values, Color: color})
	return c
}

// WithLabels sets the group labels
func (c *BarChart) WithLabels(labels []string) *BarChart {
	c.Labels = labels
	return c
}

// WithWidth sets the bar area width
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the styled chart
func (c *BarChart) Render() string {
	if len(c.Series) == 0 || len(c.Labels) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		out.WriteString("\n\n")
	}

	scale := c.maxValue()
	width := max(c.Width, 1)
	labelWidth := 0
	for _, l := range c.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(labelWidth)
	valueStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)

	for i, label := range c.Labels {
		for s, series := range c.Series {
			if i >= len(series.Values) {
				continue
			}
			prefix := strings.Repeat(" ", labelWidth)
			if s == 0 {
				prefix = labelStyle.Render(label)
			}
			v := series.Values[i]
			n := BarLength(v, scale, width)
			bar := lipgloss.NewStyle().Foreground(series.Color).Render(strings.Repeat(string(barChar(s)), n))
			pad := strings.Repeat(" ", width-n)
			fmt.Fprintf(&out, "%s │%s%s %s\n", prefix, bar, pad, valueStyle.Render(FormatChartValue(v)))
		}
	}

	if len(c.Series) > 1 {
		out.WriteString("\n")
		out.WriteString(c.renderLegend())
	}

	return out.String()
}

// BarLength maps v onto [0, width] against scale. Values at or below
// zero draw no bar.
func BarLength(v, scale float64, width int) int {
	if v <= 0 || scale <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(v / scale * float64(width)))
	return min(n, width)
}

func (c *BarChart) maxValue() float64 {
	top := 0.0
	for _, series := range c.Series {
		for _, v := range series.Values {
			top = math.Max(top, v)
		}
	}
	return top
}

func barChar(index int) rune {
	chars := []rune{'█', '▒', '░', '▓'}
	return chars[index%len(chars)]
}

func (c *BarChart) renderLegend() string {
	var items []string
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(barChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, series.Name))
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("Legend: " + strings.Join(items, " • "))
}

// FormatChartValue abbreviates a dollar amount for chart labels
func FormatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}
