// Package page describes the portfolio page independent of the host that
// renders it: fixed copy, the order of animated blocks and their reveal
// settings.
package page

import (
	"fmt"

	"github.com/alexisbeaulieu97/folio/internal/portfolio"
	"github.com/alexisbeaulieu97/folio/internal/theme"
	"github.com/alexisbeaulieu97/folio/internal/visibility"
)

const (
	Title        = "Software Developer"
	Intro        = "Building scalable web applications with modern technologies."
	Tagline      = "Passionate about clean code, performance optimization, and creating exceptional user experiences."
	CallToAction = "View My Projects"
	CurrentTag   = "Current"
	LiveDemo     = "Live Demo"
)

// Stagger delays between sibling blocks, in milliseconds.
const (
	ExperienceStagger = 150
	ProjectStagger    = 150
	SkillsStagger     = 100
	DetailDelay       = 150
)

// BlockKind says what a block renders.
type BlockKind string

const (
	KindHero          BlockKind = "hero"
	KindHeading       BlockKind = "heading"
	KindEducation     BlockKind = "education"
	KindExperience    BlockKind = "experience"
	KindProject       BlockKind = "project"
	KindSkillCategory BlockKind = "skill-category"
	KindContact       BlockKind = "contact"
)

// Block is one animated content block.
type Block struct {
	ID        string
	Section   portfolio.SectionID
	Kind      BlockKind
	// Index selects the item within its list for experience, project and
	// skill-category blocks.
	Index     int
	Animation visibility.Animation
	DelayMS   int
}

// Plan lists every animated block in page order.
func Plan(p *portfolio.Portfolio) []Block {
	blocks := []Block{
		{ID: "hero/intro", Section: portfolio.SectionHero, Kind: KindHero, Animation: visibility.Fade},
		heading(portfolio.SectionEducation),
		{ID: "education/card", Section: portfolio.SectionEducation, Kind: KindEducation, Animation: visibility.Fade, DelayMS: DetailDelay},
		heading(portfolio.SectionExperience),
	}

	for i := range p.Experiences {
		blocks = append(blocks, Block{
			ID:        fmt.Sprintf("experience/%s", p.Experiences[i].ID),
			Section:   portfolio.SectionExperience,
			Kind:      KindExperience,
			Index:     i,
			Animation: visibility.Alternate(i),
			DelayMS:   i * ExperienceStagger,
		})
	}

	blocks = append(blocks, heading(portfolio.SectionProjects))
	for i := range p.Projects {
		blocks = append(blocks, Block{
			ID:        fmt.Sprintf("projects/%s", p.Projects[i].ID),
			Section:   portfolio.SectionProjects,
			Kind:      KindProject,
			Index:     i,
			Animation: visibility.SlideUp,
			DelayMS:   i * ProjectStagger,
		})
	}

	blocks = append(blocks, heading(portfolio.SectionSkills))
	for i := range p.Skills.SkillCategories() {
		blocks = append(blocks, Block{
			ID:        fmt.Sprintf("skills/%d", i),
			Section:   portfolio.SectionSkills,
			Kind:      KindSkillCategory,
			Index:     i,
			Animation: visibility.SlideUp,
			DelayMS:   i * SkillsStagger,
		})
	}

	blocks = append(blocks,
		heading(portfolio.SectionContact),
		Block{ID: "contact/details", Section: portfolio.SectionContact, Kind: KindContact, Animation: visibility.Fade, DelayMS: DetailDelay},
	)
	return blocks
}

func heading(s portfolio.SectionID) Block {
	return Block{ID: string(s) + "/heading", Section: s, Kind: KindHeading, Animation: visibility.SlideUp}
}

// ToggleLabel is the accessible label of the theme toggle: it names the
// theme that activating the control switches to.
func ToggleLabel(current theme.Theme) string {
	return fmt.Sprintf("Switch to %s theme", current.Toggled())
}
