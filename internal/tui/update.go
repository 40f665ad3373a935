package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.focus()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.params)-1 {
			m.cursor++
			m.focus()
		}

	case key.Matches(msg, m.keys.Increase):
		m.adjust(true)

	case key.Matches(msg, m.keys.Decrease):
		m.adjust(false)

	case key.Matches(msg, m.keys.Reset):
		m.load(m.current)

	case key.Matches(msg, m.keys.Next):
		m.load((m.current + 1) % len(m.scenarios))
	}

	return m, nil
}

// adjust steps the focused parameter and recomputes when it moved
func (m *Model) adjust(up bool) {
	p := m.params[m.cursor]
	changed := p.slider.Decrement
	if up {
		changed = p.slider.Increment
	}
	if !changed() {
		return
	}
	p.set(&m.inputs, p.slider.Value)
	m.recalculate()
}
