package template

import "sort"

// Style is the rendering description one template contributes: the
// header treatment, the three content colors, and the layout toggles
// applied consistently across all sections.
type Style struct {
	HeaderBg          string
	HeaderColor       string
	AccentColor       string
	SectionTitleColor string

	// HeadingAlign is "left" for the two plain templates and
	// "center" otherwise.
	HeadingAlign string

	// BorderedHeadings renders section titles with a bottom border
	// instead of a divider line, for automated-scanner compatibility.
	BorderedHeadings bool
}

// DefaultName is the registry entry used when a selection is not
// recognized.
const DefaultName = "classic"

var registry = map[string]Style{
	"classic": {
		HeaderBg:          "linear-gradient(135deg, #1a1a2e 0%, #16213e 100%)",
		HeaderColor:       "white",
		AccentColor:       "#667eea",
		SectionTitleColor: "#1a1a2e",
		HeadingAlign:      "center",
	},
	"modern": {
		HeaderBg:          "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		HeaderColor:       "white",
		AccentColor:       "#667eea",
		SectionTitleColor: "#667eea",
		HeadingAlign:      "center",
	},
	"creative": {
		HeaderBg:          "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		HeaderColor:       "white",
		AccentColor:       "#f5576c",
		SectionTitleColor: "#f5576c",
		HeadingAlign:      "center",
	},
	"minimal": {
		HeaderBg:          "#f8f9fa",
		HeaderColor:       "#1a1a2e",
		AccentColor:       "#333",
		SectionTitleColor: "#333",
		HeadingAlign:      "left",
	},
	"ats": {
		HeaderBg:          "#ffffff",
		HeaderColor:       "#000000",
		AccentColor:       "#000000",
		SectionTitleColor: "#000000",
		HeadingAlign:      "left",
		BorderedHeadings:  true,
	},
	"executive": {
		HeaderBg:          "linear-gradient(135deg, #2c3e50 0%, #34495e 100%)",
		HeaderColor:       "white",
		AccentColor:       "#2c3e50",
		SectionTitleColor: "#2c3e50",
		HeadingAlign:      "center",
	},
}

// Lookup resolves a template name to its style. Unrecognized names fall
// back to the default entry rather than erroring.
func Lookup(name string) Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return registry[DefaultName]
}

// Exists reports whether name is a registered template.
func Exists(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the registered template names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithOverrides applies per-document color overrides on top of the
// template's style. Unknown keys are ignored.
func (s Style) WithOverrides(overrides map[string]string) Style {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		switch key {
		case "headerBg":
			s.HeaderBg = value
		case "headerColor":
			s.HeaderColor = value
		case "accentColor":
			s.AccentColor = value
		case "sectionTitleColor":
			s.SectionTitleColor = value
		}
	}
	return s
}
