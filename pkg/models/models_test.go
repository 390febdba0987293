package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewResumeDefaults(t *testing.T) {
	doc := NewResume()

	if doc.Title != DefaultTitle {
		t.Errorf("title = %q, expected %q", doc.Title, DefaultTitle)
	}
	if doc.SelectedTemplate != DefaultTemplate {
		t.Errorf("template = %q, expected %q", doc.SelectedTemplate, DefaultTemplate)
	}
	if doc.ID != "" || doc.CreatedAt != "" || doc.UpdatedAt != "" {
		t.Error("identity and timestamps must start empty")
	}
	if doc.Experiences == nil || doc.Education == nil || doc.Skills == nil {
		t.Error("child lists must be non-nil")
	}
	if len(doc.Experiences) != 0 || len(doc.Education) != 0 || len(doc.Skills) != 0 {
		t.Error("child lists must start empty")
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := NewResume()
	doc.Experiences = []Experience{{ID: "e1", JobTitle: "Engineer"}}
	doc.StyleOverrides = map[string]string{"accentColor": "#fff"}

	clone := doc.Clone()
	clone.Experiences[0].JobTitle = "Changed"
	clone.StyleOverrides["accentColor"] = "#000"
	clone.Title = "Changed"

	if doc.Experiences[0].JobTitle != "Engineer" {
		t.Error("clone shares the experience slice")
	}
	if doc.StyleOverrides["accentColor"] != "#fff" {
		t.Error("clone shares the override map")
	}
	if doc.Title != DefaultTitle {
		t.Error("clone shares scalar state")
	}
}

func TestCloneNil(t *testing.T) {
	var doc *Resume
	if doc.Clone() != nil {
		t.Error("nil resume must clone to nil")
	}
}

func TestSkillLevelValid(t *testing.T) {
	for _, level := range SkillLevels {
		if !level.Valid() {
			t.Errorf("%s must be valid", level)
		}
	}
	for _, level := range []SkillLevel{"", "expert", "Master"} {
		if level.Valid() {
			t.Errorf("%q must be invalid", level)
		}
	}
}

func TestValidateAcceptsSerializedDocument(t *testing.T) {
	doc := NewResume()
	doc.Experiences = []Experience{{ID: "e1", JobTitle: "Engineer", CurrentlyWorking: true}}
	doc.Skills = []Skill{{ID: "s1", Name: "Go", Level: LevelExpert}}

	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := Validate(payload); err != nil {
		t.Errorf("round-tripped document must validate: %v", err)
	}
}

func TestValidateRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"wrong title type", `{"title": 42, "personalInfo": {}, "experiences": [], "education": [], "skills": [], "selectedTemplate": "classic"}`},
		{"missing required fields", `{"title": "x"}`},
		{"unknown skill level", `{"title": "x", "personalInfo": {}, "experiences": [], "education": [], "skills": [{"id": "s1", "name": "Go", "level": "Master"}], "selectedTemplate": "classic"}`},
		{"unexpected property", `{"title": "x", "personalInfo": {}, "experiences": [], "education": [], "skills": [], "selectedTemplate": "classic", "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.payload))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "schema validation failed") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
