package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestNewScrollBar(t *testing.T) {
	t.Parallel()

	t.Run("uses requested width", func(t *testing.T) {
		t.Parallel()
		bar := NewScrollBar(40, lipgloss.Color("99"), true)
		require.Equal(t, 40, bar.Width())
	})

	t.Run("never collapses to zero width", func(t *testing.T) {
		t.Parallel()
		bar := NewScrollBar(0, lipgloss.Color("99"), true)
		require.Equal(t, 1, bar.Width())
	})
}

func TestScrollBarView(t *testing.T) {
	t.Parallel()

	count := func(view string) int {
		return strings.Count(ansi.Strip(view), "=")
	}

	t.Run("empty at zero", func(t *testing.T) {
		t.Parallel()
		bar := NewScrollBar(20, lipgloss.Color("99"), false)
		require.Equal(t, 0, count(bar.View(0)))
	})

	t.Run("full at hundred", func(t *testing.T) {
		t.Parallel()
		bar := NewScrollBar(20, lipgloss.Color("99"), false)
		require.Equal(t, 20, count(bar.View(100)))
	})

	t.Run("half filled", func(t *testing.T) {
		t.Parallel()
		bar := NewScrollBar(20, lipgloss.Color("99"), false)
		require.Equal(t, 10, count(bar.View(50)))
	})

	t.Run("clamps out of range", func(t *testing.T) {
		t.Parallel()
		bar := NewScrollBar(20, lipgloss.Color("99"), false)
		require.Equal(t, 20, count(bar.View(150)))
		require.Equal(t, 0, count(bar.View(-5)))
	})

	t.Run("keeps its width", func(t *testing.T) {
		t.Parallel()
		bar := NewScrollBar(20, lipgloss.Color("99"), true)
		require.Equal(t, 20, lipgloss.Width(bar.View(30)))
	})
}
