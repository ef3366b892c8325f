package crawl_test

import (
	"context"
	"testing"

	"github.com/fwojciec/hnfav"
	"github.com/fwojciec/hnfav/crawl"
	"github.com/fwojciec/hnfav/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walkFixture wires a Walker whose fetcher echoes the URL as the page
// "HTML" and whose parser serves canned pages keyed by URL.
func walkFixture(pages map[string]*hnfav.ListingPage, fetched *[]string) *crawl.Walker {
	return &crawl.Walker{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				*fetched = append(*fetched, url)
				return url, nil
			},
		},
		Listings: &mock.ListingParser{
			ParseListingFn: func(html string, baseURL string) (*hnfav.ListingPage, error) {
				page, ok := pages[html]
				if !ok {
					return nil, hnfav.Errorf(hnfav.EINTERNAL, "unexpected page %q", html)
				}
				return page, nil
			},
		},
		Limit: crawl.DefaultLimit,
	}
}

func TestWalker_Walk(t *testing.T) {
	t.Parallel()

	favoritesURL := crawl.BaseURL + "/favorites?id=alice"

	t.Run("terminates after one page when there is no More link", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		walker := walkFixture(map[string]*hnfav.ListingPage{
			favoritesURL: {ItemURLs: []string{"a", "b"}},
		}, &fetched)

		links, err := walker.Walk(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, links)
		assert.Equal(t, []string{favoritesURL}, fetched)
	})

	t.Run("accumulates pages in discovery order keeping cross-page duplicates", func(t *testing.T) {
		t.Parallel()

		page2 := crawl.BaseURL + "/favorites?id=alice&p=2"
		var fetched []string
		walker := walkFixture(map[string]*hnfav.ListingPage{
			favoritesURL: {ItemURLs: []string{"a", "b"}, NextURL: page2},
			page2:        {ItemURLs: []string{"b", "c"}},
		}, &fetched)

		links, err := walker.Walk(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "b", "c"}, links)
		assert.Equal(t, []string{favoritesURL, page2}, fetched)
	})

	t.Run("truncates to exactly the limit and stops paginating", func(t *testing.T) {
		t.Parallel()

		page2 := crawl.BaseURL + "/favorites?id=alice&p=2"
		var fetched []string
		walker := walkFixture(map[string]*hnfav.ListingPage{
			favoritesURL: {ItemURLs: []string{"a", "b", "c"}, NextURL: page2},
			page2:        {ItemURLs: []string{"d"}},
		}, &fetched)
		walker.Limit = 2

		links, err := walker.Walk(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, links)
		assert.Equal(t, []string{favoritesURL}, fetched)
	})

	t.Run("negative limit selects the default", func(t *testing.T) {
		t.Parallel()

		many := make([]string, 15)
		for i := range many {
			many[i] = string(rune('a' + i))
		}
		var fetched []string
		walker := walkFixture(map[string]*hnfav.ListingPage{
			favoritesURL: {ItemURLs: many},
		}, &fetched)
		walker.Limit = -1

		links, err := walker.Walk(context.Background(), "alice")

		require.NoError(t, err)
		assert.Len(t, links, crawl.DefaultLimit)
	})

	t.Run("zero limit returns no links", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		walker := walkFixture(map[string]*hnfav.ListingPage{
			favoritesURL: {ItemURLs: []string{"a", "b", "c"}},
		}, &fetched)
		walker.Limit = 0

		links, err := walker.Walk(context.Background(), "alice")

		require.NoError(t, err)
		assert.Empty(t, links)
		assert.Equal(t, []string{favoritesURL}, fetched)
	})

	t.Run("stops when a listing page repeats", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		walker := walkFixture(map[string]*hnfav.ListingPage{
			favoritesURL: {ItemURLs: []string{"a"}, NextURL: favoritesURL},
		}, &fetched)

		links, err := walker.Walk(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, links)
		assert.Equal(t, []string{favoritesURL}, fetched)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		walker := &crawl.Walker{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", hnfav.Errorf(hnfav.EUNAVAILABLE, "HTTP 503 for %s", url)
				},
			},
			Listings: &mock.ListingParser{},
		}

		links, err := walker.Walk(context.Background(), "alice")

		assert.Nil(t, links)
		assert.Equal(t, hnfav.EUNAVAILABLE, hnfav.ErrorCode(err))
	})

	t.Run("propagates the no-such-user error from the first page", func(t *testing.T) {
		t.Parallel()

		walker := &crawl.Walker{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "No such user.", nil
				},
			},
			Listings: &mock.ListingParser{
				ParseListingFn: func(html string, baseURL string) (*hnfav.ListingPage, error) {
					return nil, hnfav.Errorf(hnfav.EINVALID, "no such user")
				},
			},
		}

		links, err := walker.Walk(context.Background(), "nobody")

		assert.Nil(t, links)
		assert.Equal(t, hnfav.EINVALID, hnfav.ErrorCode(err))
	})
}
