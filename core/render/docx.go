// Package render — DOCX renderer.
// Builds a Word document with go-docx: a bold heading, the source line,
// and one paragraph per summary line.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/gaurav-prasanna/pagesum/core"
)

// DOCXRenderer renders the summary report as a Word document.
type DOCXRenderer struct{}

// NewDOCXRenderer creates a DOCXRenderer.
func NewDOCXRenderer() *DOCXRenderer {
	return &DOCXRenderer{}
}

// Render converts the report into DOCX bytes.
func (r *DOCXRenderer) Render(report core.Report) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(ReportHeading).Bold().Size("32")
	if report.Title != "" {
		w.AddParagraph().AddText(oneLine(report.Title)).Bold().Size("26")
	}
	w.AddParagraph().AddText("Source: " + report.Extraction.Link).Italic().Size("18")
	for _, line := range strings.Split(strings.TrimSpace(report.Summary.Text), "\n") {
		w.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing docx: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for DOCX output.
func (r *DOCXRenderer) Extension() string {
	return ".docx"
}
