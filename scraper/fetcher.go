package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Browser-like User-Agent; the App Store serves a reduced page to unknown
// clients.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0 Safari/537.36"

// PageFetcher downloads App Store product pages.
type PageFetcher struct {
	client    *http.Client
	userAgent string
}

// NewPageFetcher creates a fetcher with the given timeout. An empty
// userAgent selects the built-in browser-like default.
func NewPageFetcher(timeout time.Duration, userAgent string) *PageFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &PageFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FetchPage downloads url and returns the body and HTTP status code. A
// non-2xx status is reported through the status code, not as an error, so
// the handler can mirror it back to the caller.
func (f *PageFetcher) FetchPage(ctx context.Context, url, acceptLanguage string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return string(body), resp.StatusCode, nil
}
