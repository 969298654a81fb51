// Package extract implements the core.Extractor interface.
// It reduces a full HTML page to the readable text of its paragraphs:
//  1. Collect the text of every <p> element, in document order
//  2. Join them with single spaces and flatten newlines
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagesum/core"
)

// ParagraphExtractor pulls paragraph text out of HTML.
type ParagraphExtractor struct{}

// New creates a ParagraphExtractor.
func New() *ParagraphExtractor {
	return &ParagraphExtractor{}
}

// Extract returns the document title and the space-joined text of every
// paragraph in html. Text contains no newlines and no surrounding
// whitespace; it is empty when the page had no paragraph text.
func (e *ParagraphExtractor) Extract(html string) (core.ExtractedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return core.ExtractedPage{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return core.ExtractedPage{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  Clean(strings.Join(paragraphs, " ")),
	}, nil
}

// Clean turns every newline into a space and trims the result.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}
