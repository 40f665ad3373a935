package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// MetricCard is one labelled figure with an optional trend
type MetricCard struct {
	Label string
	Value string
	Trend *Trend
}

// Trend is a change direction and whether it is good news
type Trend struct {
	Up        bool
	Favorable bool
	Change    string // e.g. "+$5,234"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
	}
}

// WithTrend adds a trend indicator to the metric card
func (m *MetricCard) WithTrend(up, favorable bool, change string) *MetricCard {
	m.Trend = &Trend{
		Up:        up,
		Favorable: favorable,
		Change:    change,
	}
	return m
}

// RenderCompact returns the metric as one line with the label padded to labelWidth
func (m *MetricCard) RenderCompact(labelWidth int) string {
	label := tuistyles.MetricLabelStyle.Width(labelWidth).Render(m.Label + ":")
	value := tuistyles.MetricValueStyle.Render(m.Value)

	var trend string
	if m.Trend != nil {
		arrow := tuistyles.TrendIndicator(m.Trend.Up)
		trendStyle := tuistyles.MetricTrendStyle(m.Trend.Favorable)
		trend = " " + trendStyle.Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
	}

	return label + " " + value + trend
}

// SummaryCard renders metrics stacked in one bordered box under a title
func SummaryCard(title string, cards []*MetricCard, width int) string {
	labelWidth := 0
	for _, c := range cards {
		if n := lipgloss.Width(c.Label) + 1; n > labelWidth {
			labelWidth = n
		}
	}

	lines := make([]string, 0, len(cards)+2)
	lines = append(lines, tuistyles.MetricValueStyle.Foreground(tuistyles.ColorPrimary).Render(title), "")
	for _, c := range cards {
		lines = append(lines, c.RenderCompact(labelWidth))
	}

	style := tuistyles.BorderStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
