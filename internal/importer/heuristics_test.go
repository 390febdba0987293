package importer

import (
	"reflect"
	"strings"
	"testing"

	"resumecraft/pkg/models"
)

const janeResume = "Jane A. Smith\njane.smith@example.com\n+1 (415) 555-0100\nSummary\nBuilt distributed systems for five years.\nLed a team of six.\n"

func TestParsePersonalInfo(t *testing.T) {
	info := ParsePersonalInfo(janeResume)

	expected := models.PersonalInfo{
		FullName:            "Jane A. Smith",
		Email:               "jane.smith@example.com",
		Phone:               "+1 (415) 555-0100",
		ProfessionalSummary: "Built distributed systems for five years. Led a team of six.",
	}
	if !reflect.DeepEqual(info, expected) {
		t.Errorf("parsed %+v, expected %+v", info, expected)
	}
}

func TestParsePersonalInfoFields(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.PersonalInfo
	}{
		{
			name:     "email only",
			text:     "contact me at bob@example.org for details",
			expected: models.PersonalInfo{Email: "bob@example.org"},
		},
		{
			name:     "phone requires at least 8 digits",
			text:     "call 555-0100 today",
			expected: models.PersonalInfo{},
		},
		{
			name:     "phone with separators",
			text:     "tel: 020 7946 0958 after hours",
			expected: models.PersonalInfo{Phone: "020 7946 0958"},
		},
		{
			name:     "name with more than four words is rejected",
			text:     "Senior Staff Software Engineer Candidate Resume\n",
			expected: models.PersonalInfo{},
		},
		{
			name:     "name must appear in the first eight lines",
			text:     strings.Repeat("line 9\n", 8) + "Jane Smith\n",
			expected: models.PersonalInfo{},
		},
		{
			name:     "profile heading variant",
			text:     strings.Repeat("alpha beta gamma delta epsilon\n", 8) + "Professional Summary\nShips software.\n",
			expected: models.PersonalInfo{ProfessionalSummary: "Ships software."},
		},
		{
			name:     "summary capped at four lines",
			text:     strings.Repeat("alpha beta gamma delta epsilon\n", 8) + "profile\none\ntwo\nthree\nfour\nfive\n",
			expected: models.PersonalInfo{ProfessionalSummary: "one two three four"},
		},
		{
			name:     "summary heading must be the whole line",
			text:     "A summary of my career follows below eventually\n",
			expected: models.PersonalInfo{},
		},
		{
			name:     "empty input",
			text:     "",
			expected: models.PersonalInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePersonalInfo(tt.text); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parsed %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestApplyOverlaysMatchedFieldsOnly(t *testing.T) {
	doc := models.NewResume()
	doc.Title = "Current"
	doc.PersonalInfo = models.PersonalInfo{
		FullName: "Old Name",
		Location: "Lisbon",
	}
	doc.Experiences = []models.Experience{{ID: "e1", JobTitle: "Engineer"}}
	doc.SelectedTemplate = "modern"
	doc.CreatedAt = "2024-01-01T00:00:00Z"

	next := Apply(doc, janeResume)

	if next.PersonalInfo.FullName != "Jane A. Smith" {
		t.Errorf("name not overlaid: %q", next.PersonalInfo.FullName)
	}
	if next.PersonalInfo.Location != "Lisbon" {
		t.Errorf("location must survive the import: %q", next.PersonalInfo.Location)
	}
	if len(next.Experiences) != 1 || next.Experiences[0].ID != "e1" {
		t.Errorf("child lists must survive the import: %+v", next.Experiences)
	}
	if next.SelectedTemplate != "modern" {
		t.Errorf("template selection must survive: %q", next.SelectedTemplate)
	}
	if next.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("creation timestamp must survive: %q", next.CreatedAt)
	}
	if next.UpdatedAt == "" {
		t.Error("update timestamp not stamped")
	}
	if doc.PersonalInfo.FullName != "Old Name" {
		t.Error("input document mutated")
	}
}

// TestApplyNoMatchesLeavesInfoUnchanged covers text with nothing
// recognizable in it.
func TestApplyNoMatchesLeavesInfoUnchanged(t *testing.T) {
	doc := models.NewResume()
	doc.Title = "Current"
	doc.PersonalInfo = models.PersonalInfo{
		FullName: "Old Name with quite a few words",
		Email:    "old@example.com",
	}

	next := Apply(doc, "!!!\n???\n###\n")
	if !reflect.DeepEqual(next.PersonalInfo, doc.PersonalInfo) {
		t.Errorf("personal info changed: %+v", next.PersonalInfo)
	}
}

func TestApplyDefaultsTitle(t *testing.T) {
	doc := models.NewResume()
	doc.Title = ""
	if next := Apply(doc, janeResume); next.Title != "Imported Resume" {
		t.Errorf("title = %q, expected %q", next.Title, "Imported Resume")
	}
}
