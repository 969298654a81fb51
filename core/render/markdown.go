// Package render provides report exporters for PageSum.
// This file implements the Markdown renderer and the metadata lines every
// exporter prints under the heading.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagesum/core"
)

// ReportHeading is the document title used by every exporter.
const ReportHeading = "Smart Data Extraction Bot - Summary Report"

// MarkdownRenderer writes the report as Markdown, including the extracted
// source text under its own section.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the report as Markdown bytes.
func (r *MarkdownRenderer) Render(report core.Report) ([]byte, error) {
	return []byte(buildMarkdown(report)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// buildMarkdown lays out the report followed by the extracted text.
func buildMarkdown(report core.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", ReportHeading)
	if report.Title != "" {
		fmt.Fprintf(&b, "## %s\n\n", oneLine(report.Title))
	}
	for _, meta := range reportMetadata(report) {
		fmt.Fprintf(&b, "- %s\n", meta)
	}

	b.WriteString("\n## Summary\n\n")
	b.WriteString(strings.TrimSpace(report.Summary.Text))
	b.WriteString("\n")

	b.WriteString("\n## Extracted text\n\n")
	b.WriteString(strings.TrimSpace(report.Extraction.Text))
	b.WriteString("\n")
	return b.String()
}

// reportMetadata returns the "Key: value" lines describing the report.
func reportMetadata(report core.Report) []string {
	lines := []string{
		"Source: " + report.Extraction.Link,
		fmt.Sprintf("Style: %s", report.Style),
	}
	if report.Summary.Model != "" {
		lines = append(lines, "Model: "+report.Summary.Model)
	}
	if report.GeneratedAt != "" {
		lines = append(lines, "Generated: "+report.GeneratedAt)
	}
	return lines
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
