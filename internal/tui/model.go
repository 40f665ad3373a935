// Package tui is an interactive rent-vs-buy explorer. Every parameter
// change recomputes the full projection.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Model represents the entire application state
type Model struct {
	engine *calculation.CalculationEngine

	scenarios []domain.Scenario
	current   int

	// working copy of the current scenario's inputs
	inputs domain.ProjectionInputs
	params []parameter
	cursor int

	result     domain.ProjectionResult
	validation domain.ValidationResult

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates an explorer over the given scenarios. With none it
// starts from the default inputs.
func NewModel(engine *calculation.CalculationEngine, scenarios []domain.Scenario) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if len(scenarios) == 0 {
		scenarios = []domain.Scenario{{Name: "defaults", Inputs: domain.DefaultProjectionInputs()}}
	}

	m := Model{
		engine:    engine,
		scenarios: scenarios,
		keys:      defaultKeyMap(),
		help:      help.New(),
		width:     100,
		height:    40,
	}
	m.load(0)
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Inputs returns the inputs as currently edited
func (m Model) Inputs() domain.ProjectionInputs {
	return m.inputs
}

// Result returns the projection for the current inputs
func (m Model) Result() domain.ProjectionResult {
	return m.result
}

// load switches to scenario i and discards any edits
func (m *Model) load(i int) {
	m.current = i
	m.inputs = m.scenarios[i].Inputs.Clone()
	m.params = newParameters(m.inputs)
	m.cursor = min(m.cursor, len(m.params)-1)
	m.focus()
	m.recalculate()
}

func (m *Model) focus() {
	for i, p := range m.params {
		p.slider.SetFocused(i == m.cursor)
	}
}

func (m *Model) recalculate() {
	m.validation = m.engine.ValidateInputs(m.inputs)
	m.result = m.engine.CalculateRentVsBuy(m.inputs)
	m.result.Name = m.scenarios[m.current].Name
}
