package hnfav

// ListingPage holds what one favorites-listing page contributes to a
// walk: the item links found on it and the URL of the next page.
type ListingPage struct {
	// ItemURLs are the absolute thread URLs discovered on the page,
	// deduplicated within the page, in document order.
	ItemURLs []string

	// NextURL is the absolute URL of the next listing page, or empty
	// when the page has no "More" control.
	NextURL string
}

// ListingParser extracts item links and pagination from a favorites
// listing page.
type ListingParser interface {
	// ParseListing parses a listing page's HTML. Relative links are
	// normalized against baseURL. Returns EINVALID when the page is the
	// no-such-user sentinel.
	ParseListing(html string, baseURL string) (*ListingPage, error)
}
