package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the viewer's own bindings. Line and page scrolling come from
// the viewport's key map.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Jump     key.Binding
	Projects key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Theme    key.Binding
	Menu     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab/n", "next section"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "N"),
			key.WithHelp("shift+tab/N", "previous section"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "go to section"),
		),
		Projects: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "view projects"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Projects, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Jump, k.Projects},
		{k.Top, k.Bottom, k.Menu},
		{k.Theme, k.Help, k.Quit},
	}
}
