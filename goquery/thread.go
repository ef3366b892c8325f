package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hnfav"
	"golang.org/x/net/html"
)

// indentUnit is the pixel width of one nesting level in the comment
// table. Depth is the indentation width divided by this unit.
const indentUnit = 40

// Ensure ThreadParser implements hnfav.ThreadParser at compile time.
var _ hnfav.ThreadParser = (*ThreadParser)(nil)

// ThreadParser flattens a thread page into an ordered comment sequence.
// Rows are emitted in page order, which is a pre-order depth-first
// traversal of the comment tree.
type ThreadParser struct{}

// NewThreadParser creates a new ThreadParser.
func NewThreadParser() *ThreadParser {
	return &ThreadParser{}
}

// ParseThread parses a thread page. The title is the text of the page's
// title element, empty when absent. Each comment row contributes one
// record: depth from the indentation spacer width, author from the user
// link ("[deleted]" when missing), and body text from the comment
// container with reply controls and vote markers removed.
// A row without a comment container fails the whole parse.
func (p *ThreadParser) ParseThread(rawHTML string) (*hnfav.Thread, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, hnfav.Errorf(hnfav.EINVALID, "failed to parse HTML: %v", err)
	}

	thread := &hnfav.Thread{
		Title: doc.Find("title").First().Text(),
	}

	var rowErr error
	doc.Find("tr.athing.comtr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		comment, err := parseCommentRow(row, i)
		if err != nil {
			rowErr = err
			return false
		}
		thread.Comments = append(thread.Comments, *comment)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return thread, nil
}

// parseCommentRow extracts one comment record from a tr.athing.comtr row.
func parseCommentRow(row *goquery.Selection, index int) (*hnfav.Comment, error) {
	depth := 0
	if width, ok := row.Find("td.ind img").First().Attr("width"); ok {
		if px, err := strconv.Atoi(width); err == nil {
			depth = px / indentUnit
		}
	}

	author := hnfav.DeletedAuthor
	if link := row.Find("a.hnuser").First(); link.Length() > 0 {
		author = link.Text()
	}

	container := row.Find("div.comment").First()
	if container.Length() == 0 {
		id, _ := row.Attr("id")
		if id == "" {
			id = strconv.Itoa(index)
		}
		return nil, hnfav.Errorf(hnfav.EINVALID, "comment row %s has no comment container", id)
	}

	// Strip reply controls and collapsed/vote markers before extracting text.
	container.Find("div.reply, span.reply, div.unvoted, span.unvoted").Remove()

	return &hnfav.Comment{
		Depth:  depth,
		Author: author,
		Text:   blockText(container),
	}, nil
}

// blockTags are elements whose boundaries become line breaks in the
// extracted text. br is void so only its opening boundary counts.
var blockTags = map[string]bool{
	"p":          true,
	"div":        true,
	"br":         true,
	"pre":        true,
	"blockquote": true,
	"li":         true,
	"ul":         true,
	"ol":         true,
}

// blockText extracts the text content of a selection with line breaks
// at block-element boundaries and leading/trailing whitespace trimmed.
// Text node bytes are copied verbatim, so preformatted content keeps
// its internal indentation and blank lines; a boundary contributes a
// newline only when the buffer does not already end with one.
func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	boundary := func() {
		if s := b.String(); s != "" && s[len(s)-1] != '\n' {
			b.WriteString("\n")
		}
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if blockTags[n.Data] {
				boundary()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] && n.Data != "br" {
			boundary()
		}
	}
	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	return strings.TrimSpace(b.String())
}
