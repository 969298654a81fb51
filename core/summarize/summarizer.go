// Package summarize produces an AI summary of extracted page text.
// Long text is split into fixed-size chunks, each chunk is summarized by
// one sequential model call, and the partial summaries are joined in order.
package summarize

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/gaurav-prasanna/pagesum/core/chunk"
	"github.com/gaurav-prasanna/pagesum/core/extract"
	"github.com/gaurav-prasanna/pagesum/logging"
)

// Models used per style.
const (
	ModelConcise      = "facebook/bart-large-cnn"
	ModelProfessional = "facebook/bart-large-xsum"
)

// Warning texts returned in SummaryResult.Text.
const (
	MissingTokenText = "⚠️ Missing Hugging Face API token. Add HF_API_TOKEN in your .env file."
	TooShortText     = "⚠️ Extracted text too short to summarize."
	EmptyOutputText  = "⚠️ Model returned empty summary."
	modelErrorPrefix = "⚠️ Hugging Face API error: "
)

// Config holds everything the Summarizer needs. It is built once from the
// process configuration and never re-read.
type Config struct {
	APIToken     string
	ChunkSize    int
	MinTextChars int
	Params       core.GenerationParams
}

// DefaultConfig returns the standard limits with no token.
func DefaultConfig() Config {
	return Config{
		ChunkSize:    chunk.DefaultSize,
		MinTextChars: 200,
		Params: core.GenerationParams{
			MaxNewTokens: 180,
			MinLength:    40,
			Temperature:  0.7,
			DoSample:     false,
		},
	}
}

// Summarizer turns an ExtractionResult into a summary string.
type Summarizer struct {
	client  core.SummaryClient
	cfg     Config
	chunker *chunk.Chunker
	log     logging.Logger
}

// New creates a Summarizer backed by client.
func New(client core.SummaryClient, cfg Config, log logging.Logger) *Summarizer {
	if log == nil {
		log = logging.Discard()
	}
	return &Summarizer{
		client:  client,
		cfg:     cfg,
		chunker: chunk.New(cfg.ChunkSize),
		log:     log,
	}
}

// ModelFor maps a style to its model. Anything other than Concise uses
// the Professional model.
func ModelFor(style core.SummaryStyle) string {
	switch style {
	case core.StyleConcise:
		return ModelConcise
	default:
		return ModelProfessional
	}
}

// Summarize never fails: every problem is reported through the result's
// Status and a display-ready warning in Text.
func (s *Summarizer) Summarize(
	ctx context.Context,
	extraction core.ExtractionResult,
	style core.SummaryStyle,
) core.SummaryResult {
	if strings.TrimSpace(s.cfg.APIToken) == "" {
		s.log.Warn("summarization skipped: no API token configured")
		return core.SummaryResult{Text: MissingTokenText, Status: core.SummaryMissingToken}
	}

	model := ModelFor(style)

	text := extract.Clean(extraction.Text)
	if text == "" || utf8.RuneCountInString(text) < s.cfg.MinTextChars {
		s.log.Warn("summarization skipped: text too short", "chars", utf8.RuneCountInString(text))
		return core.SummaryResult{Text: TooShortText, Status: core.SummaryTooShort, Model: model}
	}

	chunks := s.chunker.Chunk(text)
	s.log.Info("summarizing", "model", model, "chunks", len(chunks))

	summaries := make([]string, 0, len(chunks))
	for i, c := range chunks {
		out, err := s.client.Summarize(ctx, model, c, s.cfg.Params)
		if err != nil {
			err = fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
			s.log.Error("model call failed", "model", model, "err", err)
			return core.SummaryResult{
				Text:   modelErrorPrefix + err.Error(),
				Status: core.SummaryModelFailed,
				Model:  model,
				Chunks: len(chunks),
				Err:    err,
			}
		}
		summaries = append(summaries, strings.TrimSpace(out))
	}

	final := strings.TrimSpace(strings.Join(summaries, " "))
	if final == "" {
		return core.SummaryResult{Text: EmptyOutputText, Status: core.SummaryEmptyOutput, Model: model, Chunks: len(chunks)}
	}
	return core.SummaryResult{Text: final, Status: core.SummaryOK, Model: model, Chunks: len(chunks)}
}
