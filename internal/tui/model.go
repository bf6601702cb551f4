// Package tui is the interactive terminal viewer for the portfolio. The
// viewport position drives the same visibility observer the page uses for
// reveal animations and the active navigation entry.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/scroll"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/tui/components"
	"github.com/alexisbeaulieu97/folio/internal/typing"
	"github.com/alexisbeaulieu97/folio/internal/visibility"
)

const (
	// compactWidth is the width below which the navigation collapses into
	// a menu.
	compactWidth = 64
	minWidth     = 40
	minHeight    = 12

	scrollFrame = 16 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Portfolio       *portfolio.Portfolio
	Logger          *logger.Logger
	TypingInterval  time.Duration
	// RevealThreshold of zero selects the reveal default.
	RevealThreshold float64
	Unicode         bool
}

// Model is the Bubble Tea model of the viewer.
type Model struct {
	data     *portfolio.Portfolio
	provider *theme.Provider
	skin     *skin
	logger   *logger.Logger
	glyphs   glyphs
	unicode  bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	bar      components.ScrollBar
	typer    typing.Model
	initCmd  tea.Cmd

	plan     []page.Block
	doc      document
	observer *visibility.Observer
	reveals  map[string]*visibility.Reveal
	shown    map[string]bool
	// pending holds blocks whose stagger tick is in flight.
	pending  map[string]bool
	tracker  *visibility.ActiveTracker

	width    int
	height   int
	ready    bool
	tooSmall bool
	menuOpen bool

	// Smooth scrolling state. A new gen invalidates frames in flight.
	scrollGen    int
	scrollTarget int
}

// scrollFrameMsg advances a smooth scroll.
type scrollFrameMsg struct{ gen int }

// revealMsg shows a block once its stagger delay has passed.
type revealMsg struct{ id string }

// NewModel builds the viewer for the theme provider scoped in ctx.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	provider, err := theme.Use(ctx)
	if err != nil {
		return Model{}, err
	}
	if opts.Portfolio == nil {
		return Model{}, fmt.Errorf("tui: portfolio is required")
	}

	threshold := opts.RevealThreshold
	if threshold == 0 {
		threshold = visibility.RevealOptions().Threshold
	}

	m := Model{
		data:     opts.Portfolio,
		provider: provider,
		skin:     newSkin(),
		logger:   opts.Logger,
		glyphs:   asciiGlyphs,
		keys:     defaultKeyMap(),
		help:     help.New(),
		plan:     page.Plan(opts.Portfolio),
		observer: visibility.NewObserver(),
		reveals:  make(map[string]*visibility.Reveal),
		shown:    make(map[string]bool),
		pending:  make(map[string]bool),
	}
	if opts.Unicode {
		m.glyphs = unicodeGlyphs
		m.unicode = true
	}
	provider.Attach(m.skin)

	revealOpts := visibility.RevealOptions()
	revealOpts.Threshold = threshold
	for _, b := range m.plan {
		r, err := visibility.NewReveal(m.observer, b.ID, b.Animation, b.DelayMS, revealOpts)
		if err != nil {
			return Model{}, fmt.Errorf("observe %s: %w", b.ID, err)
		}
		m.reveals[b.ID] = r
	}

	ids := make([]string, len(portfolio.NavSections))
	for i, s := range portfolio.NavSections {
		ids[i] = string(s)
	}
	m.tracker, err = visibility.NewActiveTracker(m.observer, ids, string(portfolio.SectionHero))
	if err != nil {
		return Model{}, err
	}

	m.typer, m.initCmd = typing.New(page.Intro, opts.TypingInterval).Start()
	return m, nil
}

// Init starts the typed intro.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Active returns the section highlighted in the navigation.
func (m Model) Active() portfolio.SectionID {
	return portfolio.SectionID(m.tracker.Active())
}

// Theme returns the theme currently applied to the viewer.
func (m Model) Theme() theme.Theme {
	return m.skin.styles.Theme
}

// Progress returns the scroll progress in percent.
func (m Model) Progress() float64 {
	return scroll.Progress(float64(m.viewport.YOffset), float64(m.doc.height), float64(m.viewport.Height))
}

// Shown reports whether block id has been revealed.
func (m Model) Shown(id string) bool {
	return m.shown[id]
}

// YOffset returns the first visible document line.
func (m Model) YOffset() int {
	return m.viewport.YOffset
}

// Compact reports whether the navigation is collapsed.
func (m Model) Compact() bool {
	return m.width < compactWidth
}

// MenuOpen reports whether the compact navigation menu is expanded.
func (m Model) MenuOpen() bool {
	return m.menuOpen
}

func (m Model) renderer() renderer {
	return renderer{
		data:   m.data,
		styles: m.skin.styles,
		width:  contentWidth(m.width),
		glyphs: m.glyphs,
		typed:  m.typer.View(),
		typing: !m.typer.Done(),
	}
}

// chromeHeight is the number of rows outside the viewport.
func (m Model) chromeHeight() int {
	rows := 3 // nav, progress bar, help
	if m.menuOpen {
		rows += len(portfolio.NavSections)
	}
	if m.help.ShowAll {
		// Full help is as tall as its longest column.
		rows += 3
	}
	return rows
}

// relayout re-renders the document for the current size, theme and typing
// state. The scroll position is kept.
func (m *Model) relayout() {
	if !m.ready {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-m.chromeHeight(), 1)
	m.help.Width = m.width
	m.bar = components.NewScrollBar(m.width, m.skin.styles.Palette.Accent, m.unicode)
	m.doc = compose(m.plan, m.renderer(), m.width)
	m.refresh()
}

// refresh pushes the current reveal state into the viewport.
func (m *Model) refresh() {
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.doc.content(m.isShown))
	m.viewport.SetYOffset(offset)
}

func (m Model) isShown(id string) bool {
	return m.shown[id]
}

// observe feeds the viewport to the observer and schedules newly visible
// blocks.
func (m *Model) observe() tea.Cmd {
	if !m.ready {
		return nil
	}
	root := visibility.Rect{
		Top:    float64(m.viewport.YOffset),
		Width:  float64(m.width),
		Height: float64(m.viewport.Height),
	}
	m.observer.Update(root, m.doc.layout)

	var cmds []tea.Cmd
	changed := false
	for _, b := range m.plan {
		r := m.reveals[b.ID]
		if !r.Visible() || m.shown[b.ID] || m.pending[b.ID] {
			continue
		}
		if r.DelayMS <= 0 {
			m.shown[b.ID] = true
			changed = true
			continue
		}
		id := b.ID
		m.pending[id] = true
		cmds = append(cmds, tea.Tick(time.Duration(r.DelayMS)*time.Millisecond, func(time.Time) tea.Msg {
			return revealMsg{id: id}
		}))
	}
	if changed {
		m.refresh()
	}
	return tea.Batch(cmds...)
}

func (m Model) maxOffset() int {
	return max(m.doc.height-m.viewport.Height, 0)
}

// scrollTo starts a smooth scroll to line.
func (m *Model) scrollTo(line int) tea.Cmd {
	m.scrollGen++
	m.scrollTarget = min(max(line, 0), m.maxOffset())
	return m.frame()
}

func (m Model) frame() tea.Cmd {
	gen := m.scrollGen
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}

// scrollToSection smooth-scrolls so s starts at the top of the viewport.
func (m *Model) scrollToSection(s portfolio.SectionID) tea.Cmd {
	return m.scrollTo(m.doc.sectionTop(s))
}

// close stops the typed intro and detaches from the observer.
func (m *Model) close() {
	m.typer = m.typer.Stop()
	m.scrollGen++
	m.tracker.Close()
	for _, r := range m.reveals {
		r.Close()
	}
	m.observer.Disconnect()
}
