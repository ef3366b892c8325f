// Package http provides an HTTP-based implementation of hnfav.Fetcher.
// Hacker News pages are fully server-rendered, so a plain GET is enough.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/hnfav"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the tool in request headers.
const userAgent = "hnfav/1.0"

// Ensure Fetcher implements hnfav.Fetcher at compile time.
var _ hnfav.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML over plain HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying HTTP client. The client's own timeout
// is left untouched when this option is used.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Any response outside the 2xx range is an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", hnfav.Errorf(hnfav.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", hnfav.Errorf(hnfav.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", hnfav.Errorf(hnfav.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", hnfav.Errorf(hnfav.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
