package hnfav

import (
	"context"
	"strings"
	"time"
)

// Document is a fully rendered thread ready for persistence.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	return nil
}

// DocumentWriter persists rendered thread documents.
type DocumentWriter interface {
	// WriteDocument writes a document and returns the path it was
	// written to.
	WriteDocument(ctx context.Context, doc *Document) (path string, err error)
}

// LinkWriter persists a discovered link list for inspection.
type LinkWriter interface {
	// WriteLinks writes the links one per line, with a trailing
	// newline, to a uniquely named file and returns its path.
	WriteLinks(links []string) (path string, err error)
}

// FallbackTitle synthesizes a document title from an item URL, for
// thread pages that carry no title element. The result doubles as the
// output filename, so it must never be empty.
func FallbackTitle(url string) string {
	if i := strings.LastIndex(url, "="); i != -1 {
		return "hn_" + url[i+1:]
	}
	return "hn_" + url
}
