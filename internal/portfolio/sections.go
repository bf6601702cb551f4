package portfolio

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionID is a stable in-page anchor.
type SectionID string

const (
	SectionHero       SectionID = "hero"
	SectionEducation  SectionID = "education"
	SectionExperience SectionID = "experience"
	SectionProjects   SectionID = "projects"
	SectionSkills     SectionID = "skills"
	SectionContact    SectionID = "contact"
)

// PageOrder lists every section in the order the page renders them.
var PageOrder = []SectionID{
	SectionHero,
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionContact,
}

// NavSections lists the sections linked from the navigation bar. Education
// is reachable by anchor but has no navigation entry.
var NavSections = []SectionID{
	SectionHero,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionContact,
}

// Label returns the navigation label for the section.
func (s SectionID) Label() string {
	if s == SectionHero {
		return "Home"
	}
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(string(s))
}

// Heading returns the section heading used by the renderers.
func (s SectionID) Heading() string {
	switch s {
	case SectionExperience:
		return "Work Experience"
	case SectionSkills:
		return "Technical Skills"
	case SectionContact:
		return "Get In Touch"
	default:
		return s.Label()
	}
}

// Anchor returns the fragment link for the section.
func (s SectionID) Anchor() string {
	return "#" + string(s)
}
