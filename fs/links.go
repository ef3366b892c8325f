package fs

import (
	"os"

	"github.com/fwojciec/hnfav"
)

// Ensure LinkFile implements hnfav.LinkWriter at compile time.
var _ hnfav.LinkWriter = (*LinkFile)(nil)

// LinkFile writes a link list to a uniquely named file under the system
// temp directory. The file is left in place for inspection.
type LinkFile struct {
	prefix string
}

// NewLinkFile creates a LinkFile using the given filename prefix.
func NewLinkFile(prefix string) *LinkFile {
	return &LinkFile{prefix: prefix}
}

// WriteLinks writes the links one per line, with a trailing newline,
// and returns the file's path.
func (l *LinkFile) WriteLinks(links []string) (string, error) {
	f, err := os.CreateTemp("", l.prefix+"*.txt")
	if err != nil {
		return "", hnfav.Errorf(hnfav.EINTERNAL, "create link file: %v", err)
	}
	defer f.Close()

	for _, link := range links {
		if _, err := f.WriteString(link + "\n"); err != nil {
			return "", hnfav.Errorf(hnfav.EINTERNAL, "write link file %s: %v", f.Name(), err)
		}
	}

	return f.Name(), nil
}
