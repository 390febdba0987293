package app

import (
	"testing"

	"resumecraft/internal/document"
	"resumecraft/pkg/models"
)

func TestApplyDefaultTemplate(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		expected   string
	}{
		{"configured template applies", "modern", "modern"},
		{"empty keeps builtin default", "", models.DefaultTemplate},
		{"unknown keeps builtin default", "fancy", models.DefaultTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := document.NewStore()
			ApplyDefaultTemplate(store, tt.configured)
			if got := store.Current().SelectedTemplate; got != tt.expected {
				t.Errorf("template = %q, expected %q", got, tt.expected)
			}
		})
	}
}

// A freshly started document picks up the configured template, the
// path 'resumecraft new' takes.
func TestApplyDefaultTemplateAfterReset(t *testing.T) {
	store := document.NewStore()
	store.SetSelectedTemplate("creative")

	store.ResetDocument()
	ApplyDefaultTemplate(store, "ats")

	if got := store.Current().SelectedTemplate; got != "ats" {
		t.Errorf("template = %q, expected %q", got, "ats")
	}
}
