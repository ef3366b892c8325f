package hnfav

// DeletedAuthor is the placeholder used when a comment's author link is
// absent (deleted or dead accounts).
const DeletedAuthor = "[deleted]"

// Comment is a single comment row from a thread page. Rows arrive in
// page order, which is a pre-order depth-first traversal of the comment
// tree, so the flat sequence plus Depth fully describes the nesting; no
// tree structure is ever materialized.
type Comment struct {
	Depth  int
	Author string
	Text   string
}

// Thread is a parsed discussion page. Title is empty when the page had
// no title element; callers substitute FallbackTitle.
type Thread struct {
	Title    string
	Comments []Comment
}

// ThreadParser flattens a fetched thread page into comment records.
type ThreadParser interface {
	// ParseThread extracts the title and the ordered comment sequence
	// from a thread page's HTML.
	ParseThread(html string) (*Thread, error)
}
