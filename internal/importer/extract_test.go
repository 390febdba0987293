package importer

import (
	"strings"
	"testing"
)

func TestExtractTextRejectsUnsupportedFormats(t *testing.T) {
	for _, filename := range []string{"resume.txt", "resume.doc", "resume.png", "resume"} {
		t.Run(filename, func(t *testing.T) {
			_, err := ExtractText(filename, []byte("whatever"))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), ".pdf") || !strings.Contains(err.Error(), ".docx") {
				t.Errorf("error must name the supported formats, got %q", err)
			}
		})
	}
}

func TestExtractTextExtensionCaseInsensitive(t *testing.T) {
	// Garbage bytes with a recognized extension must be routed to the
	// parser, whose failure mentions the format rather than support.
	_, err := ExtractText("Resume.PDF", []byte("not a pdf"))
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "unsupported") {
		t.Errorf("uppercase extension treated as unsupported: %q", err)
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a zip archive"))
	if err == nil {
		t.Fatal("expected error for corrupt docx")
	}
}
