// Package render — PDF renderer.
// Draws the report heading, metadata and summary into a PDF using gofpdf.
// Summary lines are written as plain wrapped paragraphs, never parsed.
package render

import (
	"bytes"
	"strings"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the summary report as a PDF document.
type PDFRenderer struct {
	// uncompressed leaves page streams readable; used by tests.
	uncompressed bool
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the report into PDF bytes. Only the summary is drawn;
// the extracted text is left to the Markdown and JSON exports.
func (r *PDFRenderer) Render(report core.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!r.uncompressed)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; map UTF-8 input onto it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	renderHeading(pdf, tr(ReportHeading), 16)
	if report.Title != "" {
		renderHeading(pdf, tr(oneLine(report.Title)), 13)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	for _, meta := range reportMetadata(report) {
		pdf.MultiCell(0, 5, tr(meta), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	renderHeading(pdf, "Summary", 13)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(strings.TrimSpace(report.Summary.Text), "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}
		pdf.MultiCell(0, 5.5, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading writes a bold line at the given font size.
func renderHeading(pdf *gofpdf.Fpdf, text string, size float64) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}
