// Package goquery provides goquery-based parsers for Hacker News pages.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hnfav"
)

// noSuchUser is the exact page body Hacker News serves for an unknown
// username in place of the favorites listing.
const noSuchUser = "No such user."

// itemHrefRe matches thread-detail hrefs as they appear on listing
// pages, with or without a leading slash.
var itemHrefRe = regexp.MustCompile(`^/?item\?id=\d+$`)

// Ensure ListingParser implements hnfav.ListingParser at compile time.
var _ hnfav.ListingParser = (*ListingParser)(nil)

// ListingParser extracts item links and pagination controls from a
// favorites listing page.
type ListingParser struct{}

// NewListingParser creates a new ListingParser.
func NewListingParser() *ListingParser {
	return &ListingParser{}
}

// ParseListing parses one listing page. Item links are recognized by
// their href pattern, normalized to absolute URLs against baseURL, and
// deduplicated within the page while preserving document order. The
// next-page URL comes from the anchor labeled "More", if present.
// Returns EINVALID when the page is the no-such-user sentinel.
func (p *ListingParser) ParseListing(html string, baseURL string) (*hnfav.ListingPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, hnfav.Errorf(hnfav.EINVALID, "failed to parse HTML: %v", err)
	}

	if doc.Text() == noSuchUser {
		return nil, hnfav.Errorf(hnfav.EINVALID, "no such user")
	}

	seen := make(map[string]struct{})
	var items []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !itemHrefRe.MatchString(href) {
			return
		}
		abs := absoluteURL(baseURL, href)
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		items = append(items, abs)
	})

	var next string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Text() != "More" {
			return true
		}
		href, _ := sel.Attr("href")
		next = absoluteURL(baseURL, href)
		return false
	})

	return &hnfav.ListingPage{ItemURLs: items, NextURL: next}, nil
}

// absoluteURL joins a site-relative href onto the base origin.
func absoluteURL(baseURL, href string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}
