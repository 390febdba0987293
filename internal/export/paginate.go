package export

import "regexp"

// A4 paper in millimeters.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// Orientation picks the page orientation from the bitmap's aspect
// ratio: landscape when wider than tall.
func Orientation(imgWidth, imgHeight int) string {
	if imgWidth > imgHeight {
		return "landscape"
	}
	return "portrait"
}

// PageSize returns the page dimensions in millimeters for the given
// orientation.
func PageSize(orientation string) (width, height float64) {
	if orientation == "landscape" {
		return PageHeightMM, PageWidthMM
	}
	return PageWidthMM, PageHeightMM
}

// FitHeight returns the rendered image height that results from
// fitting the bitmap's full width to the page width, preserving the
// aspect ratio.
func FitHeight(imgWidth, imgHeight int, pageWidth float64) float64 {
	return float64(imgHeight) / float64(imgWidth) * pageWidth
}

// PageOffsets computes the vertical placement of the image on each
// page. The image sits at offset zero on page one and shifts up by
// exactly one page height per following page, so each page reveals the
// next slice. The loop tolerates a one-unit overshoot so content
// ending within a unit of a page boundary does not produce a trailing
// blank page.
func PageOffsets(imgHeight, pageHeight float64) []float64 {
	offsets := []float64{0}
	heightLeft := imgHeight - pageHeight
	position := 0.0
	for heightLeft > -1 {
		position -= pageHeight
		offsets = append(offsets, position)
		heightLeft -= pageHeight
	}
	return offsets
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// OutputFilename derives the PDF filename from the document title,
// collapsing whitespace runs to underscores.
func OutputFilename(title string) string {
	if title == "" {
		title = "resume"
	}
	return whitespacePattern.ReplaceAllString(title, "_") + ".pdf"
}
