// Package typing reveals a line of text one character per tick, as a
// Bubble Tea component.
package typing

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the delay between characters.
const DefaultInterval = 50 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances one Model. Ticks whose id or generation do not match the
// receiving model are dropped.
type TickMsg struct {
	ID  int
	gen int
}

// Model holds the typed prefix of Text.
type Model struct {
	Text     string
	Interval time.Duration

	runes   []rune
	shown   int
	id      int
	gen     int
	running bool
}

// New returns a stopped model for text.
func New(text string, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{Text: text, Interval: interval, runes: []rune(text), id: nextID()}
}

// Start restarts typing from an empty line. Any tick already in flight
// becomes stale.
func (m Model) Start() (Model, tea.Cmd) {
	m.gen++
	m.shown = 0
	m.running = len(m.runes) > 0
	if !m.running {
		return m, nil
	}
	return m, m.tick()
}

// Stop cancels the pending tick chain and keeps the current prefix.
func (m Model) Stop() Model {
	m.gen++
	m.running = false
	return m
}

// Update handles TickMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.gen != m.gen || !m.running {
		return m, nil
	}

	m.shown++
	if m.shown >= len(m.runes) {
		m.shown = len(m.runes)
		m.running = false
		return m, nil
	}
	return m, m.tick()
}

// Running reports whether more ticks are scheduled.
func (m Model) Running() bool {
	return m.running
}

// Done reports whether the whole text is shown.
func (m Model) Done() bool {
	return m.shown >= len(m.runes)
}

// View returns the typed prefix.
func (m Model) View() string {
	return string(m.runes[:m.shown])
}

func (m Model) tick() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(m.Interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, gen: gen}
	})
}
