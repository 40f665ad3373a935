package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/output"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	sections := []string{
		m.renderTitleBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderParameters(), "  ", m.renderSummary()),
	}
	if warnings := m.renderWarnings(); warnings != "" {
		sections = append(sections, warnings)
	}
	sections = append(sections, m.renderChart(), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitleBar renders the application title and scenario breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("fincalc · rent vs buy explorer")
	crumb := SubtitleStyle.Render(fmt.Sprintf("scenario %s (%d/%d)", m.scenarios[m.current].Name, m.current+1, len(m.scenarios)))
	return lipgloss.JoinVertical(lipgloss.Left, title, crumb, "")
}

func (m Model) renderParameters() string {
	labelWidth := 0
	for _, p := range m.params {
		labelWidth = max(labelWidth, lipgloss.Width(p.slider.Label))
	}

	lines := make([]string, len(m.params))
	for i, p := range m.params {
		lines[i] = p.slider.RenderCompact(labelWidth + 1)
	}
	return ActiveBorderStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderSummary() string {
	in := m.inputs
	s := m.result.Summary

	payment := calculation.MonthlyMortgagePayment(in.HomePrice, in.DownPaymentPercent, in.InterestRate, in.MortgageTerm)
	advantage := s.TotalRentingCost.Sub(s.NetBuyingCost)

	verdict := components.NewMetricCard("Buying vs Renting", output.FormatCurrency(advantage.Abs()))
	if advantage.IsNegative() {
		verdict.WithTrend(false, false, "renting is cheaper")
	} else {
		verdict.WithTrend(true, true, "buying is cheaper")
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly Payment", output.FormatCurrency(payment)),
		components.NewMetricCard("Net Buying Cost", output.FormatCurrency(s.NetBuyingCost)),
		components.NewMetricCard("Renting Cost", output.FormatCurrency(s.TotalRentingCost)),
		verdict,
		components.NewMetricCard("Final Equity", output.FormatCurrency(s.FinalEquity)),
		components.NewMetricCard("Investments", output.FormatCurrency(s.InvestmentBalance)),
		components.NewMetricCard("Break-even", output.BreakEvenLabel(m.result.BreakEvenYear, in.TimeHorizon)),
	}
	return components.SummaryCard(fmt.Sprintf("After %d years", in.TimeHorizon), cards, 0)
}

func (m Model) renderWarnings() string {
	if m.validation.IsValid {
		return ""
	}
	lines := make([]string, len(m.validation.Errors))
	for i, e := range m.validation.Errors {
		lines[i] = WarningStyle.Render("! " + e)
	}
	return "\n" + strings.Join(lines, "\n")
}

// renderChart draws cumulative net buying cost against cumulative renting cost
func (m Model) renderChart() string {
	n := len(m.result.Results)
	labels := make([]string, n)
	buying := make([]float64, n)
	renting := make([]float64, n)
	for i, y := range m.result.Results {
		labels[i] = fmt.Sprintf("Y%d", y.Year)
		buying[i] = y.BuyingNetCost.InexactFloat64()
		renting[i] = y.RentingCumulativeCost.InexactFloat64()
	}

	chart := components.NewBarChart("Cumulative cost by year").
		WithLabels(labels).
		WithWidth(max(20, m.width-24)).
		AddSeries("net buying", buying, tuistyles.ColorBuying).
		AddSeries("renting", renting, tuistyles.ColorRenting)
	return "\n" + chart.Render()
}
