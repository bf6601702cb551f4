// Package components holds reusable terminal widgets.
package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ScrollBar renders reading progress as a thin full-width bar.
type ScrollBar struct {
	bar progress.Model
}

// NewScrollBar creates a bar of the given width filled with color. Without
// unicode the bar is drawn with '='.
func NewScrollBar(width int, color lipgloss.Color, unicode bool) ScrollBar {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
	)
	bar.Width = max(width, 1)
	bar.Empty = ' '
	bar.Full = '='
	if unicode {
		bar.Full = '▔'
	}
	return ScrollBar{bar: bar}
}

// Width returns the bar width in cells.
func (s ScrollBar) Width() int {
	return s.bar.Width
}

// View renders the bar for percent in [0, 100]. Out-of-range input is
// clamped.
func (s ScrollBar) View(percent float64) string {
	ratio := percent / 100
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}
	return s.bar.ViewAs(ratio)
}
