package hnfav

import "strings"

// ContextPreamble is the fixed block included verbatim in every rendered
// document, explaining the indentation convention to a downstream reader.
const ContextPreamble = `## Context

The following is a Hacker News thread in markdown format. The comments discuss a
certain link, of which the content (besides the title) is not included here. The
comments are indented according to the level of the comment, with the top-level
comment being unindented.`

// RenderThread renders a title and an ordered comment sequence as a
// markdown outline. Each comment becomes a list item indented two spaces
// per depth level, with its body lines indented two spaces further.
// Author and body text are passed through verbatim, without markdown
// escaping.
func RenderThread(title string, comments []Comment) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(ContextPreamble)
	b.WriteString("\n\n")
	b.WriteString("## Comments\n\n")

	for _, c := range comments {
		indent := strings.Repeat("  ", c.Depth)
		b.WriteString(indent)
		b.WriteString("- **")
		b.WriteString(c.Author)
		b.WriteString("**:\n")
		if c.Text != "" {
			for _, line := range strings.Split(c.Text, "\n") {
				b.WriteString(indent)
				b.WriteString("  ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
