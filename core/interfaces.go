// Package core defines the shared types and stage interfaces for PageSum.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"strings"
)

// Sentinel texts shown to the user in place of page content.
const (
	FetchFailedText  = "Failed to fetch page."
	EmptyContentText = "No meaningful content extracted — site may be protected or empty."
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
	Strategy   string // "render" or "static"
}

// FetchStatus tags how an extraction ended.
type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchEmpty
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchEmpty:
		return "empty"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExtractionResult is the single {text, link} row produced per fetch.
// Text is always display-ready: on failure it holds the matching sentinel.
type ExtractionResult struct {
	Text   string      `json:"text"`
	Link   string      `json:"link"`
	Title  string      `json:"title,omitempty"`
	Status FetchStatus `json:"-"`
	Reason string      `json:"-"` // underlying error when Status is FetchFailed
}

// SummaryStyle selects the summarization model.
type SummaryStyle string

const (
	StyleProfessional SummaryStyle = "Professional"
	StyleConcise      SummaryStyle = "Concise"
)

// ParseStyle maps user input to a SummaryStyle. Anything that is not
// "concise" (case-insensitive) is Professional.
func ParseStyle(s string) SummaryStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "concise":
		return StyleConcise
	default:
		return StyleProfessional
	}
}

// SummaryStatus tags how a summarization ended.
type SummaryStatus int

const (
	SummaryOK SummaryStatus = iota
	SummaryMissingToken
	SummaryTooShort
	SummaryModelFailed
	SummaryEmptyOutput
)

func (s SummaryStatus) String() string {
	switch s {
	case SummaryOK:
		return "ok"
	case SummaryMissingToken:
		return "missing_token"
	case SummaryTooShort:
		return "too_short"
	case SummaryModelFailed:
		return "model_failed"
	case SummaryEmptyOutput:
		return "empty_output"
	default:
		return "unknown"
	}
}

// SummaryResult carries the summary or a warning message in Text.
type SummaryResult struct {
	Text   string
	Status SummaryStatus
	Model  string
	Chunks int
	Err    error
}

// OK reports whether Text is a real summary rather than a warning.
func (r SummaryResult) OK() bool {
	return r.Status == SummaryOK
}

// GenerationParams is the fixed parameter set sent with every model call.
type GenerationParams struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	MinLength    int     `json:"min_length"`
	Temperature  float64 `json:"temperature"`
	DoSample     bool    `json:"do_sample"`
}

// Report bundles everything an exporter needs.
type Report struct {
	Title       string
	Extraction  ExtractionResult
	Style       SummaryStyle
	Summary     SummaryResult
	GeneratedAt string // RFC3339
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// ExtractedPage is what an Extractor reads from one HTML document.
type ExtractedPage struct {
	Title string
	Text  string // empty when the page has no readable text
}

// Extractor pulls readable text from raw HTML.
type Extractor interface {
	Extract(html string) (ExtractedPage, error)
}

// SummaryClient calls a hosted summarization model for one input text.
type SummaryClient interface {
	Summarize(ctx context.Context, model string, text string, params GenerationParams) (string, error)
}

// Renderer converts a Report into a final output format.
type Renderer interface {
	Render(report Report) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf", ".docx").
	Extension() string
}
