package export

import (
	"context"
	"math"
	"strings"
	"testing"
)

func TestPageOffsets(t *testing.T) {
	tests := []struct {
		name       string
		imgHeight  float64
		pageHeight float64
		expected   []float64
	}{
		{
			name:       "content shorter than one page",
			imgHeight:  100,
			pageHeight: 297,
			expected:   []float64{0},
		},
		{
			name:       "two and a half pages yields three",
			imgHeight:  297 * 2.5,
			pageHeight: 297,
			expected:   []float64{0, -297, -594},
		},
		{
			name:       "just under a page boundary",
			imgHeight:  297*2 - 2,
			pageHeight: 297,
			expected:   []float64{0, -297},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageOffsets(tt.imgHeight, tt.pageHeight)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d pages %v, expected %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if math.Abs(got[i]-tt.expected[i]) > 1e-9 {
					t.Errorf("offset[%d] = %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

// Each page's offset shifts up by exactly one page height relative to
// the previous placement.
func TestPageOffsetsStride(t *testing.T) {
	offsets := PageOffsets(4000, 297)
	for i := 1; i < len(offsets); i++ {
		if diff := offsets[i-1] - offsets[i]; math.Abs(diff-297) > 1e-9 {
			t.Errorf("stride between page %d and %d is %v, expected 297", i-1, i, diff)
		}
	}
}

func TestOrientation(t *testing.T) {
	if got := Orientation(1000, 2000); got != "portrait" {
		t.Errorf("tall image: %q", got)
	}
	if got := Orientation(2000, 1000); got != "landscape" {
		t.Errorf("wide image: %q", got)
	}
	if got := Orientation(1000, 1000); got != "portrait" {
		t.Errorf("square image: %q", got)
	}
}

func TestPageSize(t *testing.T) {
	w, h := PageSize("portrait")
	if w != PageWidthMM || h != PageHeightMM {
		t.Errorf("portrait = %v x %v", w, h)
	}
	w, h = PageSize("landscape")
	if w != PageHeightMM || h != PageWidthMM {
		t.Errorf("landscape = %v x %v", w, h)
	}
}

func TestFitHeight(t *testing.T) {
	// A 1000x2000 bitmap fitted to a 210mm page width keeps its 2:1
	// aspect ratio.
	if got := FitHeight(1000, 2000, 210); math.Abs(got-420) > 1e-9 {
		t.Errorf("FitHeight = %v, expected 420", got)
	}
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"My Resume", "My_Resume.pdf"},
		{"My   Spaced\tResume", "My_Spaced_Resume.pdf"},
		{"Single", "Single.pdf"},
		{"", "resume.pdf"},
	}
	for _, tt := range tests {
		if got := OutputFilename(tt.title); got != tt.expected {
			t.Errorf("OutputFilename(%q) = %q, expected %q", tt.title, got, tt.expected)
		}
	}
}

func TestExportRejectsNilDocument(t *testing.T) {
	if _, err := Export(context.Background(), nil, Options{}); err != ErrNoDocument {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}
}

func TestBuildPagerHTML(t *testing.T) {
	html := buildPagerHTML([]byte{0x89, 0x50}, []float64{0, -297}, 210, 297, 500)
	if got := strings.Count(html, `<div class="page">`); got != 2 {
		t.Errorf("expected 2 pages, found %d", got)
	}
	if got := strings.Count(html, "data:image/png;base64,"); got != 2 {
		t.Errorf("each page must embed the image, found %d", got)
	}
	if strings.Count(html, "top: -297.0000mm") != 1 {
		t.Error("second page offset missing")
	}
}
