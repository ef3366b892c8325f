// Package fs provides file-based persistence for rendered threads.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/hnfav"
)

// Ensure Writer implements hnfav.DocumentWriter at compile time.
var _ hnfav.DocumentWriter = (*Writer)(nil)

// Writer writes thread documents as markdown files into a single
// directory. Filenames are derived directly from document titles with no
// sanitization; titles containing filesystem-unsafe characters produce
// surprising paths. Nothing is ever deleted.
type Writer struct {
	dir string
}

// NewWriter creates a uniquely named directory with the given prefix
// under the system temp directory and returns a Writer rooted there.
func NewWriter(prefix string) (*Writer, error) {
	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		return nil, hnfav.Errorf(hnfav.EINTERNAL, "create export directory: %v", err)
	}
	return &Writer{dir: dir}, nil
}

// NewWriterAt returns a Writer rooted at dir, creating it if needed.
func NewWriterAt(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, hnfav.Errorf(hnfav.EINTERNAL, "create export directory: %v", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the directory documents are written to.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteDocument writes a document to <dir>/<title>.md and returns the
// path. The file handle is closed before returning.
func (w *Writer) WriteDocument(ctx context.Context, doc *hnfav.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, doc.Title+".md")
	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return "", hnfav.Errorf(hnfav.EINTERNAL, "write document %q: %v", doc.Title, err)
	}
	return path, nil
}
