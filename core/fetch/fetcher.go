// Package fetch implements the core.Fetcher strategies.
// HTTPFetcher performs a plain GET, BrowserFetcher renders the page in
// headless Chrome, and FallbackFetcher tries strategies in order.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/pagesum/core"
)

const (
	defaultStaticTimeout = 20 * time.Second
	defaultUserAgent     = "Mozilla/5.0"

	// StrategyStatic names the plain GET strategy in FetchResult.Strategy.
	StrategyStatic = "static"
)

// HTTPFetcher fetches web pages via a single HTTP GET, without running scripts.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates an HTTPFetcher. Zero values select the defaults
// (20s timeout, generic browser User-Agent).
func New(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultStaticTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the HTML content of the given URL.
// Any response that arrives is accepted, whatever its status code,
// so error pages still get a chance to yield paragraphs.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
		Strategy:   StrategyStatic,
	}, nil
}
