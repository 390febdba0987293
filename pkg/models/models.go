package models

// SkillLevel is the fixed proficiency scale for skills.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillLevels lists the valid proficiency levels in ascending order.
var SkillLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Valid reports whether l is one of the four known levels.
func (l SkillLevel) Valid() bool {
	for _, known := range SkillLevels {
		if l == known {
			return true
		}
	}
	return false
}

// PersonalInfo is the contact block of a resume. All fields default to
// the empty string; nothing here is validated.
type PersonalInfo struct {
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Location            string `json:"location"`
	ProfessionalSummary string `json:"professionalSummary"`
}

// Experience is a single work-history entry. Dates are ISO date strings
// or empty. When CurrentlyWorking is set the end date is ignored for
// display (rendered as "Present") but the stored value is kept as-is.
type Experience struct {
	ID               string `json:"id"`
	JobTitle         string `json:"jobTitle"`
	Company          string `json:"company"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	Description      string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Grade        string `json:"grade"`
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Resume is the aggregate document being edited. The ID stays empty
// until the document is first persisted (locally or remotely), and the
// timestamps are ISO strings stamped by the persistence paths only.
type Resume struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	PersonalInfo     PersonalInfo      `json:"personalInfo"`
	Experiences      []Experience      `json:"experiences"`
	Education        []Education       `json:"education"`
	Skills           []Skill           `json:"skills"`
	SelectedTemplate string            `json:"selectedTemplate"`
	StyleOverrides   map[string]string `json:"styleOverrides,omitempty"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

const (
	// DefaultTitle is the title given to a freshly created document.
	DefaultTitle = "New Resume"
	// DefaultTemplate is the template every new document starts with.
	DefaultTemplate = "classic"
)

// NewResume returns a fresh empty document with all defaults applied.
// Child lists are non-nil so callers can range over them unconditionally.
func NewResume() *Resume {
	return &Resume{
		Title:            DefaultTitle,
		Experiences:      []Experience{},
		Education:        []Education{},
		Skills:           []Skill{},
		SelectedTemplate: DefaultTemplate,
	}
}

// Clone returns a deep copy of the resume.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	out := *r
	out.Experiences = make([]Experience, len(r.Experiences))
	copy(out.Experiences, r.Experiences)
	out.Education = make([]Education, len(r.Education))
	copy(out.Education, r.Education)
	out.Skills = make([]Skill, len(r.Skills))
	copy(out.Skills, r.Skills)
	if r.StyleOverrides != nil {
		out.StyleOverrides = make(map[string]string, len(r.StyleOverrides))
		for k, v := range r.StyleOverrides {
			out.StyleOverrides[k] = v
		}
	}
	return &out
}
