// Package scrape turns a URL into a single ExtractionResult.
// It drives the fetch strategies and the paragraph extractor, and converts
// every failure into a tagged result with a display-ready sentinel text.
package scrape

import (
	"context"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/gaurav-prasanna/pagesum/core/chunk"
	"github.com/gaurav-prasanna/pagesum/logging"
)

// DefaultMaxChars caps the extracted text length.
const DefaultMaxChars = 12000

// Scraper fetches a page and extracts its readable text.
type Scraper struct {
	fetcher   core.Fetcher
	extractor core.Extractor
	maxChars  int
	log       logging.Logger
}

// New creates a Scraper. maxChars <= 0 selects DefaultMaxChars.
func New(fetcher core.Fetcher, extractor core.Extractor, maxChars int, log logging.Logger) *Scraper {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Scraper{
		fetcher:   fetcher,
		extractor: extractor,
		maxChars:  maxChars,
		log:       log,
	}
}

// Scrape always returns a result. Text is never empty and never longer
// than the configured cap; Status tells success apart from the sentinels.
func (s *Scraper) Scrape(ctx context.Context, url string) core.ExtractionResult {
	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.Error("fetch failed", "url", url, "err", err)
		return s.result(url, "", core.FetchFailedText, core.FetchFailed, err.Error())
	}

	extracted, err := s.extractor.Extract(page.HTML)
	if err != nil {
		s.log.Warn("extraction failed", "url", url, "err", err)
		return s.result(url, "", core.EmptyContentText, core.FetchEmpty, err.Error())
	}
	if extracted.Text == "" {
		s.log.Warn("no paragraph text found", "url", url, "strategy", page.Strategy)
		return s.result(url, extracted.Title, core.EmptyContentText, core.FetchEmpty, "")
	}

	s.log.Debug("extracted text", "url", url, "strategy", page.Strategy, "chars", len(extracted.Text))
	return s.result(url, extracted.Title, extracted.Text, core.FetchOK, "")
}

func (s *Scraper) result(url, title, text string, status core.FetchStatus, reason string) core.ExtractionResult {
	return core.ExtractionResult{
		Text:   chunk.Truncate(text, s.maxChars),
		Link:   url,
		Title:  title,
		Status: status,
		Reason: reason,
	}
}
