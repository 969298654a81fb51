package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gaurav-prasanna/pagesum/core"
	"github.com/gaurav-prasanna/pagesum/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Run("Should send a browser User-Agent and return the body", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body><p>hello</p></body></html>"))
		}))
		defer srv.Close()

		result, err := New(0, "").Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, "Mozilla/5.0", gotUA)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, StrategyStatic, result.Strategy)
		assert.Contains(t, result.HTML, "<p>hello</p>")
	})

	t.Run("Should accept non-2xx responses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("<p>Access denied</p>"))
		}))
		defer srv.Close()

		result, err := New(time.Second, "custom-agent").Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, result.StatusCode)
		assert.Contains(t, result.HTML, "Access denied")
	})

	t.Run("Should fail when the host is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := New(time.Second, "").Fetch(context.Background(), url)
		require.Error(t, err)
	})

	t.Run("Should fail on a malformed URL", func(t *testing.T) {
		_, err := New(time.Second, "").Fetch(context.Background(), "://nope")
		require.Error(t, err)
	})
}

type stubFetcher struct {
	html  string
	err   error
	calls int
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &core.FetchResult{URL: url, HTML: s.html}, nil
}

func TestFallbackFetcher_Fetch(t *testing.T) {
	t.Run("Should stop at the first successful strategy", func(t *testing.T) {
		first := &stubFetcher{html: "<p>rendered</p>"}
		second := &stubFetcher{html: "<p>static</p>"}
		f := NewFallback(logging.Discard(),
			Strategy{Name: StrategyRender, Fetcher: first},
			Strategy{Name: StrategyStatic, Fetcher: second},
		)

		result, err := f.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "<p>rendered</p>", result.HTML)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 0, second.calls)
	})

	t.Run("Should fall through to the next strategy on failure", func(t *testing.T) {
		first := &stubFetcher{err: errors.New("chrome not found")}
		second := &stubFetcher{html: "<p>static</p>"}
		f := NewFallback(nil,
			Strategy{Name: StrategyRender, Fetcher: first},
			Strategy{Name: StrategyStatic, Fetcher: second},
		)

		result, err := f.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "<p>static</p>", result.HTML)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 1, second.calls)
	})

	t.Run("Should join errors when every strategy fails", func(t *testing.T) {
		renderErr := errors.New("timeout")
		staticErr := errors.New("connection refused")
		f := NewFallback(logging.Discard(),
			Strategy{Name: StrategyRender, Fetcher: &stubFetcher{err: renderErr}},
			Strategy{Name: StrategyStatic, Fetcher: &stubFetcher{err: staticErr}},
		)

		_, err := f.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, renderErr)
		assert.ErrorIs(t, err, staticErr)
	})

	t.Run("Should error without strategies", func(t *testing.T) {
		_, err := NewFallback(logging.Discard()).Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
	})
}

func TestNewBrowser(t *testing.T) {
	t.Run("Should default a non-positive timeout", func(t *testing.T) {
		b := NewBrowser(0, time.Second, "")
		assert.Equal(t, defaultRenderTimeout, b.timeout)
		assert.Equal(t, time.Second, b.settle)
	})

	t.Run("Should keep a zero settle delay", func(t *testing.T) {
		b := NewBrowser(5*time.Second, 0, "agent")
		assert.Equal(t, 5*time.Second, b.timeout)
		assert.Equal(t, time.Duration(0), b.settle)
		assert.Equal(t, "agent", b.userAgent)
	})

	t.Run("Should default a negative settle delay", func(t *testing.T) {
		b := NewBrowser(0, -1, "")
		assert.Equal(t, defaultRenderSettle, b.settle)
	})
}
