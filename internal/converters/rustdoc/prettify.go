package rustdoc

import (
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for output normalisation.
var (
	blankLine     = regexp.MustCompile(`(?m)^[ \t\r]+$`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// prettify canonicalises blank lines in the accumulated Markdown.
// Whitespace-only lines are emptied first, so the bare newlines they
// leave behind collapse together with any surrounding run; then the
// whole document is trimmed. The result is idempotent under prettify.
func prettify(markdown string) string {
	markdown = blankLine.ReplaceAllString(markdown, "")
	markdown = multiNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
