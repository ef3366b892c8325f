package hnfav

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// Any non-2xx response is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
