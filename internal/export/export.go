package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resumecraft/internal/render"
	"resumecraft/pkg/models"
)

// ErrNoDocument is returned when an export is requested with no
// document to render.
var ErrNoDocument = errors.New("no document to export")

// Options control the export pipeline. Zero values fall back to
// print-quality defaults.
type Options struct {
	// Scale is the rasterization factor. 2 is print quality.
	Scale float64

	// ChromePath points at an explicit Chrome/Chromium binary. Empty
	// falls back to the CHROME_PATH environment variable, then to
	// whatever chromedp discovers.
	ChromePath string

	// OutputDir receives the PDF. Empty means the current directory.
	OutputDir string
}

// Export renders the document's preview, rasterizes it, splits the
// bitmap across as many pages as its height requires and writes the
// assembled PDF. It returns the output path. Any stage failing aborts
// the whole export; no partial file is produced.
func Export(ctx context.Context, doc *models.Resume, opts Options) (string, error) {
	if doc == nil {
		return "", ErrNoDocument
	}
	if opts.Scale <= 0 {
		opts.Scale = 2
	}

	html, err := render.RenderHTML(doc)
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "resumecraft-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	previewPath := filepath.Join(tmpDir, "preview.html")
	if err := os.WriteFile(previewPath, []byte(html), 0o644); err != nil {
		return "", err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	chromePath := opts.ChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	// Stage one: rasterize the full preview to a PNG at the requested
	// scale, on a white background.
	var shot []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(794, 1123, chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate("file://"+previewPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return "", fmt.Errorf("rasterize preview: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return "", fmt.Errorf("decode screenshot: %w", err)
	}

	orientation := Orientation(cfg.Width, cfg.Height)
	pageWidth, pageHeight := PageSize(orientation)
	fitHeight := FitHeight(cfg.Width, cfg.Height, pageWidth)
	offsets := PageOffsets(fitHeight, pageHeight)

	pagerPath := filepath.Join(tmpDir, "pages.html")
	pager := buildPagerHTML(shot, offsets, pageWidth, pageHeight, fitHeight)
	if err := os.WriteFile(pagerPath, []byte(pager), 0o644); err != nil {
		return "", err
	}

	// Stage two: print the paged layout to PDF at the paper size
	// matching the chosen orientation.
	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+pagerPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(orientation == "landscape").
				WithPaperWidth(pageWidth / 25.4).
				WithPaperHeight(pageHeight / 25.4).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return "", fmt.Errorf("assemble pdf: %w", err)
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	outPath := filepath.Join(outDir, OutputFilename(doc.Title))
	if err := os.WriteFile(outPath, pdfBuf, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return outPath, nil
}

// buildPagerHTML lays the single tall screenshot out as one absolutely
// positioned image per page, each page showing the next slice.
func buildPagerHTML(shot []byte, offsets []float64, pageWidth, pageHeight, fitHeight float64) string {
	src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(shot)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><style>")
	b.WriteString("* { margin: 0; padding: 0; } body { background: #ffffff; }")
	fmt.Fprintf(&b, " .page { position: relative; overflow: hidden; width: %.4fmm; height: %.4fmm; page-break-after: always; }", pageWidth, pageHeight)
	fmt.Fprintf(&b, " .page img { position: absolute; left: 0; width: %.4fmm; height: %.4fmm; }", pageWidth, fitHeight)
	b.WriteString("</style></head><body>")
	for _, offset := range offsets {
		fmt.Fprintf(&b, `<div class="page"><img src="%s" style="top: %.4fmm"></div>`, src, offset)
	}
	b.WriteString("</body></html>")
	return b.String()
}
