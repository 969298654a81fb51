package render

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() core.Report {
	return core.Report{
		Title: "Example <Domain>",
		Extraction: core.ExtractionResult{
			Text:   "This domain is for use in illustrative examples.",
			Link:   "https://example.com/docs",
			Status: core.FetchOK,
		},
		Style: core.StyleConcise,
		Summary: core.SummaryResult{
			Text:   "Example.com is reserved for documentation & examples.",
			Status: core.SummaryOK,
			Model:  "facebook/bart-large-cnn",
			Chunks: 1,
		},
		GeneratedAt: "2026-10-17T12:00:00Z",
	}
}

func TestReportHeading(t *testing.T) {
	t.Run("Should use the bot report title", func(t *testing.T) {
		assert.Equal(t, "Smart Data Extraction Bot - Summary Report", ReportHeading)
	})
}

func TestMarkdownRenderer_Render(t *testing.T) {
	t.Run("Should include heading, metadata, summary and source text", func(t *testing.T) {
		data, err := NewMarkdownRenderer().Render(sampleReport())
		require.NoError(t, err)

		md := string(data)
		assert.Contains(t, md, "# "+ReportHeading)
		assert.Contains(t, md, "## Example <Domain>")
		assert.Contains(t, md, "- Source: https://example.com/docs")
		assert.Contains(t, md, "- Style: Concise")
		assert.Contains(t, md, "- Model: facebook/bart-large-cnn")
		assert.Contains(t, md, "## Summary\n\nExample.com is reserved for documentation & examples.")
		assert.Contains(t, md, "## Extracted text\n\nThis domain is for use in illustrative examples.")
		assert.Equal(t, ".md", NewMarkdownRenderer().Extension())
	})
}

func TestJSONRenderer_Render(t *testing.T) {
	t.Run("Should carry the result tags and texts", func(t *testing.T) {
		data, err := NewJSONRenderer().Render(sampleReport())
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, "https://example.com/docs", out["source"])

		extraction := out["extraction"].(map[string]any)
		assert.Equal(t, "ok", extraction["status"])
		assert.EqualValues(t, 48, extraction["chars"])

		summary := out["summary"].(map[string]any)
		assert.Equal(t, "Concise", summary["style"])
		assert.Equal(t, "ok", summary["status"])
		assert.EqualValues(t, 1, summary["chunks"])
		assert.Equal(t, "Example.com is reserved for documentation & examples.", summary["text"])
	})

	t.Run("Should report warning statuses", func(t *testing.T) {
		report := sampleReport()
		report.Extraction = core.ExtractionResult{Text: core.FetchFailedText, Link: "https://x", Status: core.FetchFailed}
		report.Summary = core.SummaryResult{Text: "too short", Status: core.SummaryTooShort}

		data, err := NewJSONRenderer().Render(report)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"status": "failed"`)
		assert.Contains(t, string(data), `"status": "too_short"`)
	})
}

func TestPDFRenderer_Render(t *testing.T) {
	t.Run("Should produce a PDF document", func(t *testing.T) {
		data, err := NewPDFRenderer().Render(sampleReport())
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		assert.Equal(t, ".pdf", NewPDFRenderer().Extension())
	})

	t.Run("Should write summary lines verbatim", func(t *testing.T) {
		report := sampleReport()
		report.Summary.Text = "# Breaking\n- not metadata"

		data, err := (&PDFRenderer{uncompressed: true}).Render(report)
		require.NoError(t, err)

		assert.Contains(t, string(data), "(# Breaking) Tj")
		assert.Contains(t, string(data), "(- not metadata) Tj")
		assert.Contains(t, string(data), "(Source: https://example.com/docs) Tj")
	})

	t.Run("Should cope with characters outside cp1252 and long text", func(t *testing.T) {
		report := sampleReport()
		report.Summary.Text = "⚠️ Model returned empty summary — " + string(bytes.Repeat([]byte("lorem ipsum "), 800))

		data, err := NewPDFRenderer().Render(report)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})
}

func TestDOCXRenderer_Render(t *testing.T) {
	t.Run("Should write a zip package with escaped document text", func(t *testing.T) {
		data, err := NewDOCXRenderer().Render(sampleReport())
		require.NoError(t, err)

		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		require.NoError(t, err)

		files := map[string]string{}
		for _, f := range zr.File {
			rc, err := f.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			files[f.Name] = string(content)
		}

		require.Contains(t, files, "[Content_Types].xml")
		require.Contains(t, files, "_rels/.rels")
		require.Contains(t, files, "word/document.xml")

		doc := files["word/document.xml"]
		assert.Contains(t, doc, ReportHeading)
		assert.Contains(t, doc, "Example &lt;Domain&gt;")
		assert.Contains(t, doc, "documentation &amp; examples.")
		assert.Contains(t, doc, "Source: https://example.com/docs")
		assert.Equal(t, ".docx", NewDOCXRenderer().Extension())
	})

	t.Run("Should keep markdown-like summary lines as plain paragraphs", func(t *testing.T) {
		report := sampleReport()
		report.Summary.Text = "# Breaking\n- not metadata"

		data, err := NewDOCXRenderer().Render(report)
		require.NoError(t, err)

		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		require.NoError(t, err)
		var doc string
		for _, f := range zr.File {
			if f.Name != "word/document.xml" {
				continue
			}
			rc, err := f.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			doc = string(content)
		}
		assert.Contains(t, doc, "# Breaking")
		assert.Contains(t, doc, "- not metadata")
	})
}
