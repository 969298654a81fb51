package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/gaurav-prasanna/pagesum/core"
)

const (
	defaultRenderTimeout = 25 * time.Second
	defaultRenderSettle  = 3 * time.Second

	// StrategyRender names the headless browser strategy in FetchResult.Strategy.
	StrategyRender = "render"
)

// BrowserFetcher renders a page in headless Chrome so content added by
// scripts is present in the returned markup.
//
// Every Fetch starts its own browser and tears it down before returning.
// Nothing is shared between calls.
type BrowserFetcher struct {
	timeout   time.Duration
	settle    time.Duration
	userAgent string
}

// NewBrowser creates a BrowserFetcher. A non-positive timeout selects the
// 25s default. A zero settle disables the delay; a negative settle selects
// the 3s default.
func NewBrowser(timeout, settle time.Duration, userAgent string) *BrowserFetcher {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	if settle < 0 {
		settle = defaultRenderSettle
	}
	return &BrowserFetcher{
		timeout:   timeout,
		settle:    settle,
		userAgent: userAgent,
	}
}

// Fetch navigates to url, waits for the settle delay and returns the
// rendered document markup.
func (b *BrowserFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
	)
	if b.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(b.userAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, b.timeout)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(b.settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", url, err)
	}
	if html == "" {
		return nil, fmt.Errorf("rendering %s: empty document", url)
	}

	return &core.FetchResult{
		URL:      url,
		HTML:     html,
		Strategy: StrategyRender,
	}, nil
}
