package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	tpl "resumecraft/internal/template"
	"resumecraft/pkg/models"
)

//go:embed preview.html.tmpl
var previewTemplate string

var previewTpl = template.Must(template.New("preview").Parse(previewTemplate))

// ExperienceView is one experience entry prepared for rendering.
type ExperienceView struct {
	JobTitle    string
	Company     string
	Dates       string
	Description string
}

// EducationView is one education entry prepared for rendering.
type EducationView struct {
	School string
	Dates  string
	Degree string
	Grade  string
}

// Layout is the full rendering description for one document: resolved
// colors, layout toggles and pre-formatted section content. Sections
// with empty content are omitted by the template, and the section order
// is fixed: summary, experience, education, skills.
type Layout struct {
	Title    string
	FullName string
	Email    string
	Phone    string
	Location string

	Summary     string
	Experiences []ExperienceView
	Education   []EducationView
	Skills      []string

	HeaderBg          template.CSS
	HeaderColor       template.CSS
	AccentColor       template.CSS
	SectionTitleColor template.CSS
	ChipBg            template.CSS
	HeadingAlign      string
	BorderedHeadings  bool
}

// BuildLayout maps a document and its template selection to a rendering
// description. It is pure and total: a nil document renders the same as
// a fresh one.
func BuildLayout(doc *models.Resume) Layout {
	if doc == nil {
		doc = models.NewResume()
	}
	style := tpl.Lookup(doc.SelectedTemplate).WithOverrides(doc.StyleOverrides)

	layout := Layout{
		Title:             doc.Title,
		FullName:          doc.PersonalInfo.FullName,
		Email:             doc.PersonalInfo.Email,
		Phone:             doc.PersonalInfo.Phone,
		Location:          doc.PersonalInfo.Location,
		Summary:           doc.PersonalInfo.ProfessionalSummary,
		Skills:            make([]string, 0, len(doc.Skills)),
		HeaderBg:          template.CSS(style.HeaderBg),
		HeaderColor:       template.CSS(style.HeaderColor),
		AccentColor:       template.CSS(style.AccentColor),
		SectionTitleColor: template.CSS(style.SectionTitleColor),
		ChipBg:            template.CSS(style.AccentColor + "15"),
		HeadingAlign:      style.HeadingAlign,
		BorderedHeadings:  style.BorderedHeadings,
	}
	if layout.FullName == "" {
		layout.FullName = "Your Name"
	}

	for _, exp := range doc.Experiences {
		end := exp.EndDate
		if exp.CurrentlyWorking {
			end = "Present"
		}
		layout.Experiences = append(layout.Experiences, ExperienceView{
			JobTitle:    exp.JobTitle,
			Company:     exp.Company,
			Dates:       fmt.Sprintf("%s - %s", exp.StartDate, end),
			Description: exp.Description,
		})
	}

	for _, edu := range doc.Education {
		degree := edu.Degree
		if edu.FieldOfStudy != "" {
			degree = fmt.Sprintf("%s in %s", edu.Degree, edu.FieldOfStudy)
		}
		grade := ""
		if edu.Grade != "" {
			grade = fmt.Sprintf("Grade: %s", edu.Grade)
		}
		layout.Education = append(layout.Education, EducationView{
			School: edu.School,
			Dates:  fmt.Sprintf("%s - %s", edu.StartDate, edu.EndDate),
			Degree: degree,
			Grade:  grade,
		})
	}

	for _, skill := range doc.Skills {
		layout.Skills = append(layout.Skills, fmt.Sprintf("%s (%s)", skill.Name, skill.Level))
	}

	return layout
}

// RenderHTML renders the document's live preview as a standalone HTML
// page.
func RenderHTML(doc *models.Resume) (string, error) {
	var buf bytes.Buffer
	if err := previewTpl.Execute(&buf, BuildLayout(doc)); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}

// WritePreview renders the document and writes the preview page to the
// application data directory, returning its path.
func WritePreview(doc *models.Resume) (string, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return "", err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dataDir := filepath.Join(homeDir, ".resumecraft")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(dataDir, "preview.html")
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("failed to write preview: %w", err)
	}
	return path, nil
}
