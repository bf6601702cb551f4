package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Surface lipgloss.Color
}

var (
	darkPalette = Palette{
		Primary: lipgloss.Color("99"),  // Purple
		Accent:  lipgloss.Color("212"), // Pink
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("245"),
		Border:  lipgloss.Color("240"),
		Success: lipgloss.Color("42"),
		Surface: lipgloss.Color("236"),
	}

	lightPalette = Palette{
		Primary: lipgloss.Color("55"),
		Accent:  lipgloss.Color("161"),
		Text:    lipgloss.Color("235"),
		Muted:   lipgloss.Color("242"),
		Border:  lipgloss.Color("250"),
		Success: lipgloss.Color("28"),
		Surface: lipgloss.Color("254"),
	}
)

// PaletteFor returns the palette of t.
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Light {
		return lightPalette
	}
	return darkPalette
}

// Styles is the resolved style sheet for one theme.
type Styles struct {
	Theme   theme.Theme
	Palette Palette

	Name      lipgloss.Style
	Title     lipgloss.Style
	Intro     lipgloss.Style
	Tagline   lipgloss.Style
	Heading   lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Link      lipgloss.Style
	Tag       lipgloss.Style
	Badge     lipgloss.Style
	Button    lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style

	Nav       lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Toggle    lipgloss.Style
	Warning   lipgloss.Style
}

// NewStyles builds the style sheet for t.
func NewStyles(t theme.Theme) Styles {
	p := PaletteFor(t)

	return Styles{
		Theme:   t,
		Palette: p,

		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Intro: lipgloss.NewStyle().
			Foreground(p.Text),
		Tagline: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Body: lipgloss.NewStyle().
			Foreground(p.Text),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Link: lipgloss.NewStyle().
			Foreground(p.Accent).
			Underline(true),
		Tag: lipgloss.NewStyle().
			Foreground(p.Primary),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Success),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Accent).
			Padding(0, 2),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Italic: lipgloss.NewStyle().
			Italic(true),

		Nav: lipgloss.NewStyle().
			Foreground(p.Text),
		NavItem: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Underline(true).
			Padding(0, 1),
		Toggle: lipgloss.NewStyle().
			Foreground(p.Muted),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
	}
}

// skin is the terminal's theme applier. The model shares one skin with the
// theme provider so every toggle restyles the next frame.
type skin struct {
	styles Styles
}

func newSkin() *skin {
	return &skin{styles: NewStyles(theme.Default)}
}

// ApplyTheme implements theme.Applier.
func (s *skin) ApplyTheme(t theme.Theme) {
	s.styles = NewStyles(t)
}
