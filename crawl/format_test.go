package crawl_test

import (
	"testing"

	"github.com/fwojciec/hnfav/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns short URLs unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://a.com", crawl.TruncateURL("https://a.com", 20))
	})

	t.Run("keeps the end of long URLs", func(t *testing.T) {
		t.Parallel()
		result := crawl.TruncateURL("https://news.ycombinator.com/item?id=12345", 20)
		assert.Len(t, result, 20)
		assert.Equal(t, "...", result[:3])
		assert.Contains(t, result, "id=12345")
	})

	t.Run("zero max length yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, crawl.TruncateURL("https://a.com", 0))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", crawl.FormatBytes(512))
	assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
}
