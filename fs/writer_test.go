package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/hnfav"
	"github.com/fwojciec/hnfav/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes document content to a title-named file", func(t *testing.T) {
		t.Parallel()

		writer, err := fs.NewWriterAt(t.TempDir())
		require.NoError(t, err)

		doc := &hnfav.Document{
			SourceURL: "https://news.ycombinator.com/item?id=1",
			Title:     "Test Thread",
			Content:   "# Test Thread\n",
		}

		path, err := writer.WriteDocument(context.Background(), doc)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(writer.Dir(), "Test Thread.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Test Thread\n", string(content))
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		writer, err := fs.NewWriterAt(t.TempDir())
		require.NoError(t, err)

		_, err = writer.WriteDocument(context.Background(), &hnfav.Document{Title: "no source"})
		assert.Equal(t, hnfav.EINVALID, hnfav.ErrorCode(err))
	})

	t.Run("creates a uniquely named export directory", func(t *testing.T) {
		t.Parallel()

		first, err := fs.NewWriter("hnfav_test_")
		require.NoError(t, err)
		second, err := fs.NewWriter("hnfav_test_")
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = os.RemoveAll(first.Dir())
			_ = os.RemoveAll(second.Dir())
		})

		assert.NotEqual(t, first.Dir(), second.Dir())
		assert.DirExists(t, first.Dir())
	})
}
