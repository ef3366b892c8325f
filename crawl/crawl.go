// Package crawl orchestrates exporting a user's favorited threads:
// walking the paginated favorites listing, fetching each thread,
// flattening its comments and persisting the rendered documents.
package crawl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/hnfav"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Crawler coordinates the export pipeline. All collaborator fields must
// be set; Limit, Concurrency and Logger are optional.
type Crawler struct {
	Fetcher   hnfav.Fetcher
	Listings  hnfav.ListingParser
	Threads   hnfav.ThreadParser
	Documents hnfav.DocumentWriter
	Links     hnfav.LinkWriter

	// Limit caps the number of favorite links exported. Zero exports
	// nothing; negative selects DefaultLimit.
	Limit int

	// Concurrency bounds parallel thread fetches. Zero or one keeps the
	// pipeline fully sequential; listing pagination is always sequential.
	Concurrency int

	// Logger receives observational logs. Nil disables logging.
	Logger *slog.Logger
}

// Result holds the outcome of an export.
type Result struct {
	Links    int    // links discovered (after limit truncation)
	Saved    int    // documents written
	Bytes    int    // total rendered bytes
	LinkPath string // path of the link file
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressStarted fires once after the walk, carrying the link file
	// path and the total thread count.
	ProgressStarted ProgressType = iota
	// ProgressSaved fires after each document is written.
	ProgressSaved
	// ProgressFinished fires once when every thread is exported.
	ProgressFinished
)

// ProgressEvent reports progress during an export.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Path      string
}

// ProgressFunc is a callback for reporting export progress.
type ProgressFunc func(event ProgressEvent)

// Export walks the user's favorites, writes the link file, then fetches,
// flattens, renders and persists each thread. The first error aborts the
// export; documents already written stay on disk. Nothing is retried.
func (c *Crawler) Export(ctx context.Context, user string, progress ProgressFunc) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	walker := &Walker{
		Fetcher:  c.Fetcher,
		Listings: c.Listings,
		Limit:    c.Limit,
		Logger:   logger,
	}
	links, err := walker.Walk(ctx, user)
	if err != nil {
		return nil, err
	}

	linkPath, err := c.Links.WriteLinks(links)
	if err != nil {
		return nil, err
	}
	logger.Info("wrote link file", "path", linkPath, "links", len(links))

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(links), Path: linkPath})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	result := &Result{Links: len(links), LinkPath: linkPath}
	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, link := range links {
		g.Go(func() error {
			doc, path, err := c.exportThread(gctx, logger, i, link)
			if err != nil {
				return err
			}

			mu.Lock()
			result.Saved++
			result.Bytes += len(doc.Content)
			completed++
			n := completed
			mu.Unlock()

			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSaved,
					Completed: n,
					Total:     len(links),
					URL:       link,
					Title:     doc.Title,
					Path:      path,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(links), Total: len(links)})
	}
	return result, nil
}

// exportThread fetches one thread, flattens and renders it, and writes
// the resulting document.
func (c *Crawler) exportThread(ctx context.Context, logger *slog.Logger, position int, url string) (*hnfav.Document, string, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, "", err
	}

	thread, err := c.Threads.ParseThread(html)
	if err != nil {
		return nil, "", err
	}

	title := thread.Title
	if title == "" {
		title = hnfav.FallbackTitle(url)
		logger.Warn("thread has no title, using fallback", "url", url, "title", title)
	}

	content := hnfav.RenderThread(title, thread.Comments)
	doc := &hnfav.Document{
		ID:          uuid.New().String(),
		SourceURL:   url,
		Title:       title,
		Content:     content,
		ContentHash: computeHash(content),
		Position:    position,
		FetchedAt:   time.Now(),
	}

	path, err := c.Documents.WriteDocument(ctx, doc)
	if err != nil {
		return nil, "", err
	}
	logger.Info("saved thread", "title", title, "path", path, "comments", len(thread.Comments))

	return doc, path, nil
}
