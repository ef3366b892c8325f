package crawl

import (
	"context"
	"log/slog"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/hnfav"
)

const (
	// BaseURL is the fixed origin all discovered links resolve against.
	BaseURL = "https://news.ycombinator.com"

	// DefaultLimit caps how many favorite links a walk accumulates when
	// no limit is configured (negative Limit).
	DefaultLimit = 10
)

// Visited-page guard sizing. Listings are shallow; the filter only has
// to catch a pagination cycle, and a false positive merely ends the walk
// early with a warning.
const (
	visitedExpectedPages     = 1000
	visitedFalsePositiveRate = 0.001
)

// Walker pages through a user's favorites listing and accumulates item
// links in discovery order. Pagination is strictly sequential; the
// cumulative limit depends on pages arriving in order.
type Walker struct {
	Fetcher  hnfav.Fetcher
	Listings hnfav.ListingParser

	// Limit caps the accumulated link count. Zero is honored as zero
	// (the first page is still fetched and validated); negative selects
	// DefaultLimit.
	Limit int

	// Logger receives observational progress logs. Nil disables logging.
	Logger *slog.Logger
}

// Walk fetches listing pages starting from the user's favorites URL
// until no next page exists or the limit is reached, returning the
// accumulated links truncated to the limit. Links are deduplicated
// within each page only; duplicates across pages are kept. A listing
// URL seen twice ends the walk instead of looping.
func (w *Walker) Walk(ctx context.Context, user string) ([]string, error) {
	limit := w.Limit
	if limit < 0 {
		limit = DefaultLimit
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	visited := bloom.NewWithEstimates(visitedExpectedPages, visitedFalsePositiveRate)

	url := BaseURL + "/favorites?id=" + user
	var links []string
	page := 0

	for url != "" {
		if visited.TestString(url) {
			logger.Warn("listing page already visited, stopping", "url", url)
			break
		}
		visited.AddString(url)

		page++
		logger.Info("fetching listing page", "page", page, "url", url)

		html, err := w.Fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		lp, err := w.Listings.ParseListing(html, BaseURL)
		if err != nil {
			return nil, err
		}

		links = append(links, lp.ItemURLs...)
		logger.Info("found item links", "page", page, "count", len(lp.ItemURLs), "total", len(links))

		if len(links) >= limit {
			links = links[:limit]
			logger.Info("reached link limit", "limit", limit)
			break
		}

		if lp.NextURL == "" {
			logger.Info("no more pages")
		}
		url = lp.NextURL
	}

	return links, nil
}
