package mock

import (
	"context"

	"github.com/fwojciec/hnfav"
)

var _ hnfav.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of hnfav.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *hnfav.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *hnfav.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}

var _ hnfav.LinkWriter = (*LinkWriter)(nil)

// LinkWriter is a mock implementation of hnfav.LinkWriter.
type LinkWriter struct {
	WriteLinksFn func(links []string) (string, error)
}

func (w *LinkWriter) WriteLinks(links []string) (string, error) {
	return w.WriteLinksFn(links)
}
