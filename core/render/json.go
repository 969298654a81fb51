// Package render — JSON renderer.
// Emits the full report, including the extracted text and the result
// tags, as indented JSON.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/pagesum/core"
)

// JSONRenderer produces structured JSON output for a report.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type reportJSON struct {
	Source      string      `json:"source"`
	Title       string      `json:"title,omitempty"`
	GeneratedAt string      `json:"generated_at,omitempty"`
	Extraction  extractJSON `json:"extraction"`
	Summary     summaryJSON `json:"summary"`
}

type extractJSON struct {
	Status string `json:"status"`
	Chars  int    `json:"chars"`
	Text   string `json:"text"`
}

type summaryJSON struct {
	Style  string `json:"style"`
	Model  string `json:"model,omitempty"`
	Status string `json:"status"`
	Chunks int    `json:"chunks"`
	Text   string `json:"text"`
}

// Render converts the report into JSON.
func (r *JSONRenderer) Render(report core.Report) ([]byte, error) {
	page := reportJSON{
		Source:      report.Extraction.Link,
		Title:       report.Title,
		GeneratedAt: report.GeneratedAt,
		Extraction: extractJSON{
			Status: report.Extraction.Status.String(),
			Chars:  len([]rune(report.Extraction.Text)),
			Text:   report.Extraction.Text,
		},
		Summary: summaryJSON{
			Style:  string(report.Style),
			Model:  report.Summary.Model,
			Status: report.Summary.Status.String(),
			Chunks: report.Summary.Chunks,
			Text:   report.Summary.Text,
		},
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
