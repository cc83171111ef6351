package rendering

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"github.com/jonathan/cv-generator/internal/types"
)

// renderTimeout bounds a single print run, including browser startup.
const renderTimeout = 60 * time.Second

// A4 paper in inches with the document's 0.75in margins.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	pageMargin  = 0.75
)

// Renderer prints content blocks to PDF files under outputDir using a local
// headless Chrome. Chrome/Chromium must be installed on the system.
type Renderer struct {
	outputDir string
}

// New creates a Renderer writing artifacts under outputDir, creating the
// directory if needed.
func New(outputDir string) (*Renderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, &RenderError{Message: "failed to create output directory", Cause: err}
	}
	return &Renderer{outputDir: outputDir}, nil
}

// RenderPDF renders the blocks with the given template and writes the PDF
// artifact. It returns the artifact id and the file path.
func (r *Renderer) RenderPDF(ctx context.Context, blocks []types.Block, templateID string) (string, string, error) {
	html, err := BuildHTML(blocks, templateID)
	if err != nil {
		return "", "", err
	}

	// The browser loads the document from a temp file; data URLs hit length
	// limits on large resumes.
	tmp, err := os.CreateTemp("", "cv_*.html")
	if err != nil {
		return "", "", &RenderError{Message: "failed to create temp document", Cause: err}
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(html); err != nil {
		_ = tmp.Close()
		return "", "", &RenderError{Message: "failed to write temp document", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return "", "", &RenderError{Message: "failed to close temp document", Cause: err}
	}

	pdfData, err := printToPDF(ctx, "file://"+tmpPath)
	if err != nil {
		return "", "", &RenderError{Message: "headless browser rendering failed", Cause: err}
	}

	id := uuid.New().String()
	path := r.ArtifactPath(id)
	if err := os.WriteFile(path, pdfData, 0o644); err != nil {
		return "", "", &RenderError{Message: "failed to write artifact", Cause: err}
	}
	return id, path, nil
}

// ArtifactPath returns the file path for an artifact id. The file may or may
// not exist.
func (r *Renderer) ArtifactPath(id string) string {
	return filepath.Join(r.outputDir, "cv_"+id+".pdf")
}

// printToPDF loads the URL in a headless browser and prints it to PDF bytes.
func printToPDF(ctx context.Context, url string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, renderTimeout)
	defer cancel()

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfData, nil
}
