package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/gaurav-prasanna/pagesum/logging"
)

// Strategy is a named Fetcher used by FallbackFetcher.
type Strategy struct {
	Name    string
	Fetcher core.Fetcher
}

// FallbackFetcher tries each strategy once, in order, and returns the
// first successful result. Failures are logged, not retried.
type FallbackFetcher struct {
	strategies []Strategy
	log        logging.Logger
}

// NewFallback creates a FallbackFetcher over the given strategies.
func NewFallback(log logging.Logger, strategies ...Strategy) *FallbackFetcher {
	if log == nil {
		log = logging.Discard()
	}
	return &FallbackFetcher{strategies: strategies, log: log}
}

// Fetch returns the first strategy result that succeeds. When every
// strategy fails the joined errors are returned.
func (f *FallbackFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	if len(f.strategies) == 0 {
		return nil, errors.New("no fetch strategies configured")
	}

	var errs []error
	for _, s := range f.strategies {
		result, err := s.Fetcher.Fetch(ctx, url)
		if err != nil {
			f.log.Warn("fetch strategy failed", "strategy", s.Name, "url", url, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
			continue
		}
		f.log.Info("fetch strategy succeeded", "strategy", s.Name, "url", url)
		return result, nil
	}
	return nil, errors.Join(errs...)
}
