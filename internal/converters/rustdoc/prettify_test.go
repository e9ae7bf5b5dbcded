package rustdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettify_RemovesWhitespaceOnlyLines(t *testing.T) {
	out := prettify("first\n   \t\nsecond")
	assert.Equal(t, "first\n\nsecond", out)
}

func TestPrettify_CollapsesNewlineRuns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"three newlines", "a\n\n\nb", "a\n\nb"},
		{"many newlines", "a\n\n\n\n\n\nb", "a\n\nb"},
		{"two newlines untouched", "a\n\nb", "a\n\nb"},
		{"single newline untouched", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prettify(tt.input))
		})
	}
}

func TestPrettify_WhitespaceLinesCollapseWithNeighbours(t *testing.T) {
	// Padded blank lines are emptied first, then the resulting newline
	// run collapses; the order of the two passes matters.
	out := prettify("a\n \n\t\n  \nb")
	assert.Equal(t, "a\n\nb", out)
}

func TestPrettify_TrimsDocument(t *testing.T) {
	assert.Equal(t, "content", prettify("\n\n  content  \n\n"))
}

func TestPrettify_EmptyInput(t *testing.T) {
	assert.Equal(t, "", prettify(""))
	assert.Equal(t, "", prettify("\n\n\n"))
	assert.Equal(t, "", prettify("   \t  "))
}

func TestPrettify_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a\n\n\n\nb",
		"a\n  \n \nb",
		"\n\n# Title\n\n\ncontent\n\n",
		"```rs\nfn a() {\n\n\n}\n```",
	}

	for _, input := range inputs {
		once := prettify(input)
		assert.Equal(t, once, prettify(once), "input %q", input)
	}
}

func TestPrettify_OutputProperties(t *testing.T) {
	inputs := []string{
		"a\n\n\n\n\nb\n   \n\t\nc",
		"\n \n\n\nx\n\n\n",
	}

	for _, input := range inputs {
		out := prettify(input)

		assert.NotContains(t, out, "\n\n\n")
		for _, line := range strings.Split(out, "\n") {
			if line != "" {
				assert.NotEmpty(t, strings.TrimSpace(line), "whitespace-only line in %q", out)
			}
		}
		assert.Equal(t, strings.TrimSpace(out), out)
	}
}
