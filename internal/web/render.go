// Package web renders the portfolio as a single HTML document. The theme is
// carried by the data-theme attribute of the root element and reveal,
// active-section and scroll-progress behavior is configured through data
// attributes read by the embedded script.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/markup"
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

// RenderOptions tune one rendering of the page.
type RenderOptions struct {
	// AssetPrefix is prepended to stylesheet and script paths.
	AssetPrefix string
	// ToggleAction is the form target of the theme toggle. Empty means the
	// page toggles client-side only and persists in local storage.
	ToggleAction    string
	RevealThreshold float64
	TypingInterval  time.Duration
	// RevealAll renders every block visible, as when the host cannot
	// observe visibility.
	RevealAll bool
}

// Renderer renders one data table. It is safe for concurrent use.
type Renderer struct {
	tmpl         *template.Template
	data         *portfolio.Portfolio
	plan         []page.Block
	descriptions []template.HTML
}

// NewRenderer parses the embedded template and pre-renders the project
// descriptions of p.
func NewRenderer(p *portfolio.Portfolio) (*Renderer, error) {
	if p == nil {
		return nil, fmt.Errorf("web: portfolio is required")
	}

	tmpl, err := template.New("").ParseFS(ContentFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	descriptions := make([]template.HTML, len(p.Projects))
	for i, proj := range p.Projects {
		html, err := markup.HTML(proj.Description)
		if err != nil {
			return nil, fmt.Errorf("render description of %s: %w", proj.ID, err)
		}
		descriptions[i] = html
	}

	return &Renderer{tmpl: tmpl, data: p, plan: page.Plan(p), descriptions: descriptions}, nil
}

// Render writes the page with theme t applied to the root element.
func (r *Renderer) Render(w io.Writer, t theme.Theme, opts RenderOptions) error {
	data, err := r.pageData(t, opts)
	if err != nil {
		return err
	}

	// Render into a buffer so a template failure never leaves a partial page.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// StaticFS returns the embedded static assets rooted at their directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(ContentFS, "static")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}
