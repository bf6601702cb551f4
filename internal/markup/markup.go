// Package markup renders the inline markdown used in project descriptions,
// as HTML for the page and as styled text for the terminal.
package markup

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// HTML converts src to sanitized HTML. Raw HTML in src is escaped by the
// renderer's defaults.
func HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// Styler decorates a run of text.
type Styler func(string) string

// Terminal flattens src to plain text, passing strong and emphasized runs
// through bold and italic. Paragraphs are separated by a blank line.
func Terminal(src string, bold, italic Styler) string {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var (
		out    strings.Builder
		strong int
		em     int
		blocks int
	)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.ListItem:
			if entering && blocks > 0 {
				out.WriteString("\n\n")
			}
			if entering {
				blocks++
			}
		case *ast.Emphasis:
			delta := 1
			if !entering {
				delta = -1
			}
			if node.Level >= 2 {
				strong += delta
			} else {
				em += delta
			}
		case *ast.Text:
			if !entering {
				break
			}
			run := string(node.Segment.Value(source))
			if strong > 0 && bold != nil {
				run = bold(run)
			}
			if em > 0 && italic != nil {
				run = italic(run)
			}
			out.WriteString(run)
			if node.SoftLineBreak() || node.HardLineBreak() {
				out.WriteString(" ")
			}
		case *ast.AutoLink:
			if entering {
				out.Write(node.URL(source))
			}
		}
		return ast.WalkContinue, nil
	})

	return out.String()
}
