package remote

import "resumecraft/pkg/models"

// Record is the server's wire shape for a resume. Every field other
// than the identity pair is optional; the server may name the identity
// field either "_id" or "id" and both are accepted, preferring "_id".
type Record struct {
	MongoID          string               `json:"_id"`
	ID               string               `json:"id"`
	Title            *string              `json:"title"`
	PersonalInfo     *models.PersonalInfo `json:"personalInfo"`
	Experiences      []models.Experience  `json:"experiences"`
	Education        []models.Education   `json:"education"`
	Skills           []models.Skill       `json:"skills"`
	SelectedTemplate *string              `json:"selectedTemplate"`
	StyleOverrides   map[string]string    `json:"styleOverrides"`
	CreatedAt        string               `json:"createdAt"`
	UpdatedAt        string               `json:"updatedAt"`
}

// Identity returns the record's identity, preferring "_id" over "id".
func (r Record) Identity() string {
	if r.MongoID != "" {
		return r.MongoID
	}
	return r.ID
}

// Normalize maps a wire record onto the canonical document shape. It is
// total: any missing sub-block is filled from the defaults of a fresh
// document so downstream code can assume every field is present.
func Normalize(rec Record) models.Resume {
	doc := models.NewResume()

	doc.ID = rec.Identity()
	if rec.Title != nil {
		doc.Title = *rec.Title
	}
	if rec.PersonalInfo != nil {
		doc.PersonalInfo = *rec.PersonalInfo
	}
	if rec.Experiences != nil {
		doc.Experiences = rec.Experiences
	}
	if rec.Education != nil {
		doc.Education = rec.Education
	}
	if rec.Skills != nil {
		doc.Skills = rec.Skills
	}
	if rec.SelectedTemplate != nil && *rec.SelectedTemplate != "" {
		doc.SelectedTemplate = *rec.SelectedTemplate
	}
	if rec.StyleOverrides != nil {
		doc.StyleOverrides = rec.StyleOverrides
	}
	doc.CreatedAt = rec.CreatedAt
	doc.UpdatedAt = rec.UpdatedAt

	return *doc
}
