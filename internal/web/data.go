package web

import (
	"fmt"
	"html/template"

	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/typing"
	"github.com/alexisbeaulieu97/folio/internal/visibility"
)

type blockView struct {
	ID      string
	Class   string
	DelayMS int
	// Text is the heading of heading blocks.
	Text string
}

// Style returns the inline transition delay of a staggered block.
func (b blockView) Style() template.CSS {
	if b.DelayMS <= 0 {
		return ""
	}
	return template.CSS(fmt.Sprintf("transition-delay: %dms", b.DelayMS))
}

type navItem struct {
	ID     string
	Label  string
	Anchor string
	Active bool
}

type experienceView struct {
	portfolio.Experience
	Block blockView
}

type projectView struct {
	portfolio.Project
	Block       blockView
	Description template.HTML
}

type skillView struct {
	portfolio.SkillCategory
	Block blockView
}

type pageData struct {
	Theme        string
	ToggleLabel  string
	ToggleAction string
	AssetPrefix  string

	Personal   portfolio.PersonalInfo
	Education  portfolio.Education
	Title      string
	Intro      string
	Tagline    string
	CallTo     string
	CurrentTag string
	LiveDemo   string
	Nav        []navItem
	MailTo     template.URL
	Tel        template.URL

	Hero        blockView
	Headers     map[string]blockView
	EduCard     blockView
	Contact     blockView
	Experiences []experienceView
	Projects    []projectView
	Skills      []skillView

	RevealThreshold   float64
	SectionRootMargin string
	TypingIntervalMS  int64
}

func (r *Renderer) pageData(t theme.Theme, opts RenderOptions) (*pageData, error) {
	if _, ok := theme.Parse(t.String()); !ok {
		return nil, fmt.Errorf("invalid theme %q", t)
	}

	revealOpts := visibility.RevealOptions()
	if opts.RevealThreshold > 0 {
		revealOpts.Threshold = opts.RevealThreshold
	}
	interval := opts.TypingInterval
	if interval <= 0 {
		interval = typing.DefaultInterval
	}

	// A fresh observer that is never updated yields the state at mount:
	// nothing revealed yet. Without one every block renders visible.
	var obs *visibility.Observer
	if !opts.RevealAll {
		obs = visibility.NewObserver()
	}

	d := &pageData{
		Theme:             t.String(),
		ToggleLabel:       page.ToggleLabel(t),
		ToggleAction:      opts.ToggleAction,
		AssetPrefix:       opts.AssetPrefix,
		Personal:          r.data.Personal,
		Education:         r.data.Education,
		Title:             page.Title,
		Intro:             page.Intro,
		Tagline:           page.Tagline,
		CallTo:            page.CallToAction,
		CurrentTag:        page.CurrentTag,
		LiveDemo:          page.LiveDemo,
		MailTo:            template.URL("mailto:" + r.data.Personal.Email),
		Tel:               template.URL("tel:" + r.data.Personal.Phone),
		Headers:           make(map[string]blockView, len(portfolio.PageOrder)),
		RevealThreshold:   revealOpts.Threshold,
		SectionRootMargin: visibility.SectionOptions().RootMargin,
		TypingIntervalMS:  interval.Milliseconds(),
	}

	for _, s := range portfolio.NavSections {
		d.Nav = append(d.Nav, navItem{
			ID:     string(s),
			Label:  s.Label(),
			Anchor: s.Anchor(),
			Active: s == portfolio.SectionHero,
		})
	}

	skills := r.data.Skills.SkillCategories()
	for _, b := range r.plan {
		reveal, err := visibility.NewReveal(obs, b.ID, b.Animation, b.DelayMS, revealOpts)
		if err != nil {
			return nil, err
		}
		view := blockView{ID: b.ID, Class: reveal.Class(), DelayMS: b.DelayMS}

		switch b.Kind {
		case page.KindHero:
			d.Hero = view
		case page.KindHeading:
			view.Text = b.Section.Heading()
			d.Headers[string(b.Section)] = view
		case page.KindEducation:
			d.EduCard = view
		case page.KindExperience:
			d.Experiences = append(d.Experiences, experienceView{Experience: r.data.Experiences[b.Index], Block: view})
		case page.KindProject:
			d.Projects = append(d.Projects, projectView{
				Project:     r.data.Projects[b.Index],
				Block:       view,
				Description: r.descriptions[b.Index],
			})
		case page.KindSkillCategory:
			d.Skills = append(d.Skills, skillView{SkillCategory: skills[b.Index], Block: view})
		case page.KindContact:
			d.Contact = view
		}
	}

	return d, nil
}
