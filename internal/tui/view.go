package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
)

// View renders the current model state.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.tooSmall {
		return m.skin.styles.Warning.Render(m.sizeWarning())
	}

	var b strings.Builder
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	if m.menuOpen {
		b.WriteString(m.renderMenu())
		b.WriteString("\n")
	}
	b.WriteString(m.bar.View(m.Progress()))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderNav renders the navigation bar with the theme toggle on the right.
func (m Model) renderNav() string {
	s := m.skin.styles
	active := m.Active()

	var left string
	if m.Compact() {
		marker := "="
		if m.unicode {
			marker = "≡"
		}
		left = s.NavActive.Render(marker+" "+active.Label()) + s.Muted.Render(" (m)")
	} else {
		items := make([]string, 0, len(portfolio.NavSections)+1)
		items = append(items, s.Name.Render(m.data.Personal.Name)+"  ")
		for _, sec := range portfolio.NavSections {
			style := s.NavItem
			if sec == active {
				style = s.NavActive
			}
			items = append(items, style.Render(sec.Label()))
		}
		left = lipgloss.JoinHorizontal(lipgloss.Top, items...)
	}

	toggle := s.Toggle.Render(fmt.Sprintf("[t] %s", page.ToggleLabel(m.Theme())))
	if m.Compact() {
		toggle = s.Toggle.Render("[t] " + m.Theme().Toggled().String())
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(toggle)
	if gap < 1 {
		return s.Nav.MaxWidth(m.width).Render(left)
	}
	return s.Nav.Render(left + strings.Repeat(" ", gap) + toggle)
}

// renderMenu lists the navigation entries of the compact menu.
func (m Model) renderMenu() string {
	s := m.skin.styles
	lines := make([]string, len(portfolio.NavSections))
	for i, sec := range portfolio.NavSections {
		style := s.NavItem
		if sec == m.Active() {
			style = s.NavActive
		}
		lines[i] = style.Render(fmt.Sprintf("%d %s", i+1, sec.Label()))
	}
	return strings.Join(lines, "\n")
}
