package rendering

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
)

// A4 in inches.
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// DefaultExportTimeout bounds one PDF export when none is configured.
const DefaultExportTimeout = 30 * time.Second

// PDFExporter prints rendered resumes to PDF with headless Chrome.
type PDFExporter struct {
	chromePath string
	timeout    time.Duration
}

// NewPDFExporter returns an exporter. An empty chromePath lets chromedp find
// the browser; a non-positive timeout uses DefaultExportTimeout.
func NewPDFExporter(chromePath string, timeout time.Duration) *PDFExporter {
	if timeout <= 0 {
		timeout = DefaultExportTimeout
	}
	return &PDFExporter{chromePath: chromePath, timeout: timeout}
}

// Export renders d and prints it to an A4 PDF.
func (e *PDFExporter) Export(ctx context.Context, d types.Draft) ([]byte, error) {
	html, err := RenderHTML(d)
	if err != nil {
		return nil, err
	}
	return e.PrintHTML(ctx, html)
}

// PrintHTML loads an HTML document into a fresh headless browser and prints
// it with backgrounds.
func (e *PDFExporter) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, e.timeout)
	defer cancel()

	start := time.Now()
	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Format: FormatPDF, Message: "failed to print page", Cause: err}
	}

	log.Printf("[export] printed %d bytes in %s", len(pdf), time.Since(start).Round(time.Millisecond))
	return pdf, nil
}
