package importer

import (
	"regexp"
	"strings"
	"time"

	"resumecraft/pkg/models"
)

// Extraction patterns. Phone candidates are pattern-matched first and
// then required to carry at least 8 digits, so short numeric fragments
// like dates do not qualify.
var (
	emailPattern   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern   = regexp.MustCompile(`\+?\d[\d\s\-().]{6,}\d`)
	namePattern    = regexp.MustCompile(`^[A-Za-z ,.'-]{2,}$`)
	summaryHeading = regexp.MustCompile(`(?i)^(professional\s+summary|summary|profile)\s*:?\s*$`)
)

const summaryLineLimit = 4

// ParsePersonalInfo extracts a best-effort partial personal info block
// from raw resume text. Every field is independent: a field with no
// match stays empty and the caller leaves the corresponding document
// field as it was. This never fails, whatever the input looks like.
func ParsePersonalInfo(text string) models.PersonalInfo {
	info := models.PersonalInfo{}

	info.Email = emailPattern.FindString(text)
	info.Phone = findPhone(text)

	lines := nonEmptyLines(text)
	info.FullName = findName(lines, info.Email, info.Phone)
	info.ProfessionalSummary = findSummary(lines)

	return info
}

// findPhone returns the first phone-shaped token carrying at least 8
// digits.
func findPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 8 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// findName scans only the first 8 lines. Lines carrying the matched
// email or phone are skipped; the first remaining line made of letters
// and light punctuation, at most 4 words long, wins.
func findName(lines []string, email, phone string) string {
	limit := 8
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if email != "" && strings.Contains(line, email) {
			continue
		}
		if phone != "" && strings.Contains(line, phone) {
			continue
		}
		if !namePattern.MatchString(line) {
			continue
		}
		if len(strings.Fields(line)) > 4 {
			continue
		}
		return line
	}
	return ""
}

// findSummary locates a summary or profile heading and joins the
// following up to 4 lines.
func findSummary(lines []string) string {
	for i, line := range lines {
		if !summaryHeading.MatchString(line) {
			continue
		}
		end := i + 1 + summaryLineLimit
		if end > len(lines) {
			end = len(lines)
		}
		return strings.Join(lines[i+1:end], " ")
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Apply overlays the fields extracted from text onto the document.
// Only matched fields overwrite; location, the child lists and the
// template selection always survive. The creation timestamp is kept
// when present and the update timestamp is stamped fresh.
func Apply(doc *models.Resume, text string) *models.Resume {
	next := doc.Clone()
	if next == nil {
		next = models.NewResume()
	}

	info := ParsePersonalInfo(text)
	if info.FullName != "" {
		next.PersonalInfo.FullName = info.FullName
	}
	if info.Email != "" {
		next.PersonalInfo.Email = info.Email
	}
	if info.Phone != "" {
		next.PersonalInfo.Phone = info.Phone
	}
	if info.ProfessionalSummary != "" {
		next.PersonalInfo.ProfessionalSummary = info.ProfessionalSummary
	}

	if next.Title == "" {
		next.Title = "Imported Resume"
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if next.CreatedAt == "" {
		next.CreatedAt = now
	}
	next.UpdatedAt = now
	return next
}
