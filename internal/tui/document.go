package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/visibility"
)

const (
	blockGap   = 1
	sectionGap = 2
	footerGap  = 2
	// maxContentWidth keeps lines readable on wide terminals.
	maxContentWidth = 96
	contentPad      = 2
)

// placed is a rendered block at its line offset.
type placed struct {
	block  page.Block
	view   string
	top    int
	height int
}

// document is the laid-out page: every block and section as a line range.
type document struct {
	blocks   []placed
	footer   []string
	sections map[portfolio.SectionID]visibility.Rect
	layout   visibility.LayoutMap
	height   int
	width    int
}

func contentWidth(width int) int {
	return max(min(width-2*contentPad, maxContentWidth), 20)
}

// compose renders plan and stacks the blocks vertically. Sections span from
// their first block to the start of the next section.
func compose(plan []page.Block, r renderer, width int) document {
	doc := document{
		sections: make(map[portfolio.SectionID]visibility.Rect, len(portfolio.PageOrder)),
		layout:   make(visibility.LayoutMap, len(plan)+len(portfolio.PageOrder)),
		width:    width,
	}

	starts := make(map[portfolio.SectionID]int, len(portfolio.PageOrder))
	line := 0
	var current portfolio.SectionID
	for i, b := range plan {
		if i > 0 {
			if b.Section != current {
				line += sectionGap
			} else {
				line += blockGap
			}
		}
		if b.Section != current {
			starts[b.Section] = line
			current = b.Section
		}

		view := r.block(b)
		height := lipgloss.Height(view)
		doc.blocks = append(doc.blocks, placed{block: b, view: view, top: line, height: height})
		doc.layout[b.ID] = visibility.Rect{Top: float64(line), Width: float64(width), Height: float64(height)}
		line += height
	}

	doc.footer = append(make([]string, footerGap), strings.Split(r.footer(), "\n")...)
	doc.height = line + len(doc.footer)

	for i, s := range portfolio.PageOrder {
		top, ok := starts[s]
		if !ok {
			continue
		}
		bottom := doc.height
		for _, next := range portfolio.PageOrder[i+1:] {
			if t, ok := starts[next]; ok {
				bottom = t
				break
			}
		}
		rect := visibility.Rect{Top: float64(top), Width: float64(width), Height: float64(bottom - top)}
		doc.sections[s] = rect
		doc.layout[string(s)] = rect
	}

	return doc
}

// sectionTop returns the first line of s, or 0 when s is not on the page.
func (d document) sectionTop(s portfolio.SectionID) int {
	return int(d.sections[s].Top)
}

// content joins the document into viewport text. Blocks that are not shown
// keep their lines but render blank.
func (d document) content(shown func(id string) bool) string {
	lines := make([]string, d.height)
	indent := strings.Repeat(" ", contentPad)
	for _, p := range d.blocks {
		if !shown(p.block.ID) {
			continue
		}
		for i, l := range strings.Split(p.view, "\n") {
			lines[p.top+i] = indent + l
		}
	}
	footerTop := d.height - len(d.footer)
	for i, l := range d.footer {
		if l != "" {
			lines[footerTop+i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}
