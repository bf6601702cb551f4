package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/typing"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = m.width < minWidth || m.height < minHeight
		// Growing past the compact breakpoint closes the menu.
		if m.width >= compactWidth {
			m.menuOpen = false
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, max(m.height-m.chromeHeight(), 1))
			m.ready = true
		}
		m.relayout()
		return m, m.observe()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		m.scrollGen++
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, tea.Batch(cmd, m.observe())

	case typing.TickMsg:
		var cmd tea.Cmd
		m.typer, cmd = m.typer.Update(msg)
		m.relayout()
		return m, cmd

	case scrollFrameMsg:
		if msg.gen != m.scrollGen {
			return m, nil
		}
		return m.stepScroll()

	case revealMsg:
		delete(m.pending, msg.id)
		if !m.shown[msg.id] {
			m.shown[msg.id] = true
			m.refresh()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Theme):
		next, err := m.provider.Toggle()
		if err != nil {
			m.logger.WarnErr(err, "theme toggle rejected")
			return m, nil
		}
		m.logger.WithFields(map[string]any{"theme": next.String()}).Debug("theme toggled")
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, m.observe()

	case key.Matches(msg, m.keys.Menu):
		if !m.Compact() {
			return m, nil
		}
		m.menuOpen = !m.menuOpen
		m.relayout()
		return m, m.observe()

	case key.Matches(msg, m.keys.Jump):
		index := int(msg.String()[0] - '1')
		sections := portfolio.PageOrder
		if m.menuOpen {
			sections = portfolio.NavSections
			m.menuOpen = false
			m.relayout()
		}
		if index >= len(sections) {
			return m, nil
		}
		return m, m.scrollToSection(sections[index])

	case key.Matches(msg, m.keys.Projects):
		return m, m.scrollToSection(portfolio.SectionProjects)

	case key.Matches(msg, m.keys.Next):
		return m, m.scrollToSection(m.adjacentSection(1))

	case key.Matches(msg, m.keys.Prev):
		return m, m.scrollToSection(m.adjacentSection(-1))

	case key.Matches(msg, m.keys.Top):
		return m, m.scrollTo(0)

	case key.Matches(msg, m.keys.Bottom):
		return m, m.scrollTo(m.maxOffset())
	}

	// Anything else is manual scrolling and cancels a smooth scroll.
	m.scrollGen++
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, tea.Batch(cmd, m.observe())
}

// adjacentSection returns the navigation section dir steps from the active
// one, staying at the ends.
func (m Model) adjacentSection(dir int) portfolio.SectionID {
	sections := portfolio.NavSections
	current := 0
	for i, s := range sections {
		if s == m.Active() {
			current = i
			break
		}
	}
	next := min(max(current+dir, 0), len(sections)-1)
	return sections[next]
}

// stepScroll moves a third of the remaining distance, at least one line.
func (m Model) stepScroll() (tea.Model, tea.Cmd) {
	offset := m.viewport.YOffset
	diff := m.scrollTarget - offset
	if diff == 0 {
		return m, m.observe()
	}

	step := diff / 3
	if step == 0 {
		step = 1
		if diff < 0 {
			step = -1
		}
	}
	m.viewport.SetYOffset(offset + step)

	observeCmd := m.observe()
	if m.viewport.YOffset == offset || m.viewport.YOffset == m.scrollTarget {
		return m, observeCmd
	}
	return m, tea.Batch(observeCmd, m.frame())
}

func (m Model) sizeWarning() string {
	return fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d", m.width, m.height, minWidth, minHeight)
}
