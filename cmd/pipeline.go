package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gaurav-prasanna/pagesum/config"
	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/gaurav-prasanna/pagesum/core/extract"
	"github.com/gaurav-prasanna/pagesum/core/fetch"
	"github.com/gaurav-prasanna/pagesum/core/inference"
	"github.com/gaurav-prasanna/pagesum/core/render"
	"github.com/gaurav-prasanna/pagesum/core/scrape"
	"github.com/gaurav-prasanna/pagesum/core/summarize"
	"github.com/gaurav-prasanna/pagesum/logging"
)

// validateURL rejects input the pipeline should never see: empty strings
// and URLs without a scheme or host.
func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("please enter a valid URL before proceeding")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}
	return nil
}

// newScraper wires the fetch strategies: headless render first, then a
// plain GET, unless staticOnly is set.
func newScraper(c *config.Config, log logging.Logger, staticOnly bool) *scrape.Scraper {
	var strategies []fetch.Strategy
	if !staticOnly {
		strategies = append(strategies, fetch.Strategy{
			Name:    fetch.StrategyRender,
			Fetcher: fetch.NewBrowser(c.Fetch.RenderTimeout, c.Fetch.RenderSettle, c.Fetch.UserAgent),
		})
	}
	strategies = append(strategies, fetch.Strategy{
		Name:    fetch.StrategyStatic,
		Fetcher: fetch.New(c.Fetch.StaticTimeout, c.Fetch.UserAgent),
	})

	return scrape.New(
		fetch.NewFallback(log, strategies...),
		extract.New(),
		c.Fetch.MaxTextChars,
		log,
	)
}

// newSummarizer builds the Summarizer from the loaded configuration.
func newSummarizer(c *config.Config, log logging.Logger) *summarize.Summarizer {
	sc := summarize.DefaultConfig()
	sc.APIToken = c.HuggingFace.APIToken
	sc.ChunkSize = c.Summary.ChunkSize
	sc.MinTextChars = c.Summary.MinTextChars
	sc.Params.MaxNewTokens = c.Summary.MaxNewTokens
	sc.Params.MinLength = c.Summary.MinLength

	client := inference.NewClient(c.HuggingFace.BaseURL, c.HuggingFace.APIToken, c.HuggingFace.Timeout)
	return summarize.New(client, sc, log)
}

// selectRenderers returns one renderer per requested export format.
func selectRenderers(pdf, docx, markdown, jsonOut bool) []core.Renderer {
	var renderers []core.Renderer
	if pdf {
		renderers = append(renderers, render.NewPDFRenderer())
	}
	if docx {
		renderers = append(renderers, render.NewDOCXRenderer())
	}
	if markdown {
		renderers = append(renderers, render.NewMarkdownRenderer())
	}
	if jsonOut {
		renderers = append(renderers, render.NewJSONRenderer())
	}
	return renderers
}
