package tui

import (
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// RenderStatic renders the whole page once with every block visible, for
// output that is not an interactive terminal.
func RenderStatic(p *portfolio.Portfolio, t theme.Theme, width int, unicode bool) string {
	g := asciiGlyphs
	if unicode {
		g = unicodeGlyphs
	}
	r := renderer{
		data:   p,
		styles: NewStyles(t),
		width:  contentWidth(width),
		glyphs: g,
		typed:  page.Intro,
	}
	doc := compose(page.Plan(p), r, width)
	return doc.content(func(string) bool { return true }) + "\n"
}
