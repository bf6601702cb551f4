package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/markup"
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/visibility"
)

type glyphs struct {
	bullet, check, cursor, arrow, dot, current string
}

var (
	unicodeGlyphs = glyphs{bullet: "•", check: "✓", cursor: "▌", arrow: "↓", dot: " · ", current: "●"}
	asciiGlyphs   = glyphs{bullet: "-", check: "+", cursor: "_", arrow: "v", dot: " - ", current: "*"}
)

// renderer turns plan blocks into styled text at a fixed content width.
type renderer struct {
	data   *portfolio.Portfolio
	styles Styles
	width  int
	glyphs glyphs

	// typed is the visible prefix of the intro line; typing adds a cursor.
	typed  string
	typing bool
}

func (r renderer) block(b page.Block) string {
	switch b.Kind {
	case page.KindHero:
		return r.hero()
	case page.KindHeading:
		return r.styles.Heading.Width(r.width).Render(b.Section.Heading())
	case page.KindEducation:
		return r.education()
	case page.KindExperience:
		return r.experience(b)
	case page.KindProject:
		return r.project(b)
	case page.KindSkillCategory:
		return r.skillCategory(b)
	case page.KindContact:
		return r.contact()
	default:
		return ""
	}
}

func (r renderer) hero() string {
	s := r.styles
	p := r.data.Personal

	intro := s.Intro.Width(r.width)
	// Reserve the height of the finished line so typing never shifts the
	// blocks below.
	height := lipgloss.Height(intro.Render(page.Intro + r.glyphs.cursor))
	typed := r.typed
	if r.typing {
		typed += r.glyphs.cursor
	}

	lines := []string{
		"",
		s.Name.Render(p.Name),
		s.Title.Render(page.Title),
		"",
		intro.Height(height).Render(typed),
		s.Tagline.Width(r.width).Render(page.Tagline),
		"",
	}
	lines = append(lines, r.socialLinks()...)
	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.Button.Render(page.CallToAction+" "+r.glyphs.arrow),
			s.Muted.Render("  press p"),
		),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r renderer) socialLinks() []string {
	p := r.data.Personal
	var links []string
	if p.GitHub != "" {
		links = append(links, r.labeled("GitHub", r.styles.Link.Render(p.GitHub)))
	}
	if p.LeetCode != "" {
		links = append(links, r.labeled("LeetCode", r.styles.Link.Render(p.LeetCode)))
	}
	return links
}

func (r renderer) labeled(label, value string) string {
	return r.styles.Muted.Width(10).Render(label) + value
}

func (r renderer) card(animation visibility.Animation, content ...string) string {
	style := r.styles.Card.Width(r.width - 4)
	if animation == visibility.SlideRight {
		style = style.MarginLeft(2)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, content...))
}

// inner is the text width inside a card.
func (r renderer) inner() int {
	return max(r.width-8, 10)
}

func (r renderer) education() string {
	s := r.styles
	e := r.data.Education
	return r.card(visibility.Fade,
		s.CardTitle.Render(e.Degree),
		s.Body.Render(e.Institution),
		s.Muted.Render(joinNonEmpty(r.glyphs.dot, e.Duration, e.Location)),
	)
}

func (r renderer) experience(b page.Block) string {
	s := r.styles
	exp := r.data.Experiences[b.Index]

	title := s.CardTitle.Render(exp.Position)
	if exp.Current {
		title += " " + s.Badge.Render(r.glyphs.current+" "+page.CurrentTag)
	}

	content := []string{
		title,
		s.Body.Render(exp.Company),
		s.Muted.Render(exp.Duration),
	}
	for _, resp := range exp.Responsibilities {
		content = append(content, bullet(s.Body, r.glyphs.bullet, resp, r.inner()))
	}
	return r.card(b.Animation, content...)
}

func (r renderer) project(b page.Block) string {
	s := r.styles
	proj := r.data.Projects[b.Index]

	content := []string{s.CardTitle.Render(proj.Title)}
	if proj.Description != "" {
		desc := markup.Terminal(proj.Description, styler(s.Bold), styler(s.Italic))
		content = append(content, s.Body.Width(r.inner()).Render(desc))
	}
	if proj.LiveURL != "" {
		content = append(content, s.Muted.Render(page.LiveDemo+" ")+s.Link.Render(proj.LiveURL))
	}
	if len(proj.Technologies) > 0 {
		content = append(content, "", wrapTags(s.Tag, proj.Technologies, r.inner()))
	}
	if len(proj.Features) > 0 {
		content = append(content, "")
		for _, f := range proj.Features {
			content = append(content, bullet(s.Body, r.glyphs.check, f, r.inner()))
		}
	}
	return r.card(b.Animation, content...)
}

func (r renderer) skillCategory(b page.Block) string {
	categories := r.data.Skills.SkillCategories()
	category := categories[b.Index]
	return r.card(b.Animation,
		r.styles.CardTitle.Render(category.Name),
		wrapTags(r.styles.Tag, category.Skills, r.inner()),
	)
}

func (r renderer) contact() string {
	s := r.styles
	p := r.data.Personal

	content := []string{
		r.labeled("Email", s.Link.Render(p.Email)),
		r.labeled("Phone", s.Link.Render(p.Phone)),
	}
	if p.Location != "" {
		content = append(content, r.labeled("Location", s.Body.Render(p.Location)))
	}
	content = append(content, r.socialLinks()...)
	return r.card(visibility.Fade, content...)
}

func (r renderer) footer() string {
	return r.styles.Muted.Width(r.width).Align(lipgloss.Center).Render(r.data.Personal.Name)
}

func styler(style lipgloss.Style) markup.Styler {
	return func(text string) string { return style.Render(text) }
}

// bullet renders text behind a marker with a hanging indent.
func bullet(style lipgloss.Style, marker, text string, width int) string {
	indent := lipgloss.Width(marker) + 1
	body := style.Width(max(width-indent, 1)).Render(text)
	lines := strings.Split(body, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = marker + " " + lines[i]
			continue
		}
		lines[i] = strings.Repeat(" ", indent) + lines[i]
	}
	return strings.Join(lines, "\n")
}

// wrapTags lays tags out left to right, breaking lines at width.
func wrapTags(style lipgloss.Style, tags []string, width int) string {
	const sep = "  "
	var (
		lines   []string
		current string
	)
	for _, tag := range tags {
		rendered := style.Render(tag)
		switch {
		case current == "":
			current = rendered
		case lipgloss.Width(current)+len(sep)+lipgloss.Width(rendered) > width:
			lines = append(lines, current)
			current = rendered
		default:
			current += sep + rendered
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
