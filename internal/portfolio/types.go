package portfolio

// PersonalInfo holds identity and contact details shown in the hero and
// contact sections.
type PersonalInfo struct {
	Name     string `yaml:"name" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	Phone    string `yaml:"phone" validate:"required"`
	Location string `yaml:"location"`
	GitHub   string `yaml:"github" validate:"omitempty,http_url"`
	LeetCode string `yaml:"leetcode" validate:"omitempty,http_url"`
}

// Education describes the single education card.
type Education struct {
	Institution string `yaml:"institution" validate:"required"`
	Degree      string `yaml:"degree" validate:"required"`
	Duration    string `yaml:"duration"`
	Location    string `yaml:"location"`
}

// Experience is one work-history entry.
type Experience struct {
	ID               string   `yaml:"id" validate:"required,slug"`
	Company          string   `yaml:"company" validate:"required"`
	Position         string   `yaml:"position" validate:"required"`
	Duration         string   `yaml:"duration"`
	Responsibilities []string `yaml:"responsibilities" validate:"dive,required"`
	Current          bool     `yaml:"current"`
}

// Project is one card in the projects grid.
type Project struct {
	ID           string   `yaml:"id" validate:"required,slug"`
	Title        string   `yaml:"title" validate:"required"`
	Description  string   `yaml:"description"`
	LiveURL      string   `yaml:"liveUrl" validate:"omitempty,http_url"`
	Technologies []string `yaml:"technologies" validate:"dive,required"`
	Features     []string `yaml:"features" validate:"dive,required"`
}

// Skills groups skills by the seven fixed categories.
type Skills struct {
	Programming []string `yaml:"programming"`
	Backend     []string `yaml:"backend"`
	Frontend    []string `yaml:"frontend"`
	Databases   []string `yaml:"databases"`
	CloudDevOps []string `yaml:"cloudDevOps"`
	Tools       []string `yaml:"tools"`
	Practices   []string `yaml:"practices"`
}

// Portfolio is the complete static data table. It is read-only once loaded.
type Portfolio struct {
	Personal    PersonalInfo `yaml:"personal"`
	Education   Education    `yaml:"education"`
	Experiences []Experience `yaml:"experiences" validate:"dive"`
	Projects    []Project    `yaml:"projects" validate:"dive"`
	Skills      Skills       `yaml:"skills"`
}

// SkillCategory pairs a display label with its skills.
type SkillCategory struct {
	Name   string
	Skills []string
}

// SkillCategories maps the skills record onto the fixed, ordered set of
// seven display categories.
func (s Skills) SkillCategories() []SkillCategory {
	return []SkillCategory{
		{Name: "Programming Languages", Skills: s.Programming},
		{Name: "Backend Technologies", Skills: s.Backend},
		{Name: "Frontend Technologies", Skills: s.Frontend},
		{Name: "Databases", Skills: s.Databases},
		{Name: "Cloud & DevOps", Skills: s.CloudDevOps},
		{Name: "Tools", Skills: s.Tools},
		{Name: "Practices", Skills: s.Practices},
	}
}
