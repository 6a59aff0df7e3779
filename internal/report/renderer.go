// Package report builds the PDF profile report that gets mailed to the
// requester. It owns artifact naming, the display-safe view mapping and the
// wkhtmltopdf rendering step.
package report

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/sunny1561/EnrichProfile/internal/logging"
	"github.com/sunny1561/EnrichProfile/internal/logging/types"
	"github.com/sunny1561/EnrichProfile/pkg/models"
)

//go:embed templates/profile.html
var templateFS embed.FS

// Renderer produces a PDF report for a profile at the given destination path.
type Renderer interface {
	Render(ctx context.Context, profile *models.Profile, destPath string) error
}

// RenderError wraps a failure in the HTML-to-PDF step.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render profile report: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// PDFRenderer renders the profile template through wkhtmltopdf. The binary
// must be present on the host; pipeline failures surface as *RenderError.
type PDFRenderer struct {
	tmpl   *template.Template
	logger types.Logger
}

// NewPDFRenderer parses the embedded report template.
func NewPDFRenderer() (*PDFRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/profile.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &PDFRenderer{
		tmpl:   tmpl,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Render fills the template with defaulted profile data and writes an A4
// portrait PDF with 10mm margins to destPath.
func (r *PDFRenderer) Render(ctx context.Context, profile *models.Profile, destPath string) error {
	data := BuildReportData(profile)

	var html bytes.Buffer
	if err := r.tmpl.Execute(&html, data); err != nil {
		return &RenderError{Err: err}
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return &RenderError{Err: err}
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.MarginTop.Set(10)
	pdfg.MarginBottom.Set(10)
	pdfg.MarginLeft.Set(10)
	pdfg.MarginRight.Set(10)
	pdfg.AddPage(wkhtmltopdf.NewPageReader(&html))

	if err := pdfg.CreateContext(ctx); err != nil {
		return &RenderError{Err: err}
	}
	if err := pdfg.WriteFile(destPath); err != nil {
		return &RenderError{Err: err}
	}

	r.logger.Info("Profile report rendered", map[string]interface{}{
		"path":       destPath,
		"size_bytes": pdfg.Buffer().Len(),
	})
	return nil
}
