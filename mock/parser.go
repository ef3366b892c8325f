package mock

import "github.com/fwojciec/hnfav"

var _ hnfav.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of hnfav.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string, baseURL string) (*hnfav.ListingPage, error)
}

func (p *ListingParser) ParseListing(html string, baseURL string) (*hnfav.ListingPage, error) {
	return p.ParseListingFn(html, baseURL)
}

var _ hnfav.ThreadParser = (*ThreadParser)(nil)

// ThreadParser is a mock implementation of hnfav.ThreadParser.
type ThreadParser struct {
	ParseThreadFn func(html string) (*hnfav.Thread, error)
}

func (p *ThreadParser) ParseThread(html string) (*hnfav.Thread, error) {
	return p.ParseThreadFn(html)
}
