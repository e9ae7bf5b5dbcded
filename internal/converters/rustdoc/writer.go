package rustdoc

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlElement records one open element on the writer's ancestor stack.
// Its lifetime is exactly the subtree visit of the corresponding DOM node.
type htmlElement struct {
	tag   string
	attrs []html.Attribute
}

// classAttr returns the value of the element's first "class" attribute.
func (e htmlElement) classAttr() (string, bool) {
	for _, attr := range e.attrs {
		if attr.Key == "class" {
			return attr.Val, true
		}
	}
	return "", false
}

// hasClassToken reports whether the space-separated class list contains
// the given token.
func (e htmlElement) hasClassToken(token string) bool {
	class, ok := e.classAttr()
	if !ok {
		return false
	}
	for _, c := range strings.Split(class, " ") {
		if strings.TrimSpace(c) == token {
			return true
		}
	}
	return false
}

// startTagOutcome tells the traversal how to proceed after an element's
// start tag has been handled.
type startTagOutcome int

const (
	// startTagContinue visits the element's children as normal.
	startTagContinue startTagOutcome = iota

	// startTagSkip prunes the element's entire subtree from the output.
	startTagSkip
)

// skipClasses are rustdoc chrome containers with no documentation content.
var skipClasses = []string{"nav-container", "sidebar-elems", "out-of-band"}

// MarkdownWriter converts a parsed rustdoc HTML tree into Markdown.
// A writer holds per-conversion state and is not reusable: construct one
// per call to Run. Writers are not safe for concurrent use, but distinct
// writers may run in parallel.
type MarkdownWriter struct {
	// stack is the chain of open ancestor elements, outermost first.
	// It is pushed before an element's children are visited and popped
	// after, so rule checks during a subtree see every enclosing element.
	stack []htmlElement

	markdown strings.Builder
}

// NewMarkdownWriter creates a writer for a single conversion.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Run walks the tree rooted at node depth-first and returns the
// prettified Markdown document.
func (w *MarkdownWriter) Run(node *html.Node) (string, error) {
	if err := w.visitNode(node); err != nil {
		return "", err
	}
	return prettify(w.markdown.String()), nil
}

// isInside reports whether an ancestor with the given tag is open.
func (w *MarkdownWriter) isInside(tag string) bool {
	for _, parent := range w.stack {
		if parent.tag == tag {
			return true
		}
	}
	return false
}

// pushStr appends to the Markdown output.
func (w *MarkdownWriter) pushStr(s string) {
	w.markdown.WriteString(s)
}

// pushNewline appends a newline to the Markdown output.
func (w *MarkdownWriter) pushNewline() {
	w.pushStr("\n")
}

func (w *MarkdownWriter) visitNode(node *html.Node) error {
	var current *htmlElement

	switch node.Type {
	case html.DocumentNode, html.DoctypeNode, html.CommentNode:
		// No content of their own; children are still visited.
	case html.ElementNode:
		// Elements with an empty tag name have no identity for rule or
		// stack purposes, though their children are still visited.
		if node.Data != "" {
			current = &htmlElement{tag: node.Data, attrs: node.Attr}
		}
	case html.TextNode:
		w.visitText(node.Data)
	}

	if current != nil {
		if w.startTag(*current) == startTagSkip {
			return nil
		}
		w.stack = append(w.stack, *current)
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := w.visitNode(child); err != nil {
			return err
		}
	}

	if current != nil {
		// Pop before the end tag fires: the end rules ask about
		// enclosing elements, never about the element itself.
		w.stack = w.stack[:len(w.stack)-1]
		w.endTag(*current)
	}

	return nil
}

// startTag emits the opening Markdown for an element and decides whether
// its subtree should be visited at all. Tags without a rule are
// transparent containers.
func (w *MarkdownWriter) startTag(tag htmlElement) startTagOutcome {
	switch tag.tag {
	case "head", "script", "nav":
		return startTagSkip
	case "h1":
		w.pushStr("\n\n# ")
	case "h2":
		w.pushStr("\n\n## ")
	case "h3":
		w.pushStr("\n\n### ")
	case "h4":
		w.pushStr("\n\n#### ")
	case "h5":
		w.pushStr("\n\n##### ")
	case "h6":
		w.pushStr("\n\n###### ")
	case "code":
		if !w.isInside("pre") {
			w.pushStr("`")
		}
	case "pre":
		language := ""
		if tag.hasClassToken("rust") {
			language = "rs"
		}
		w.pushStr("\n```" + language + "\n")
	case "ul", "ol":
		w.pushNewline()
	case "li":
		w.pushStr("- ")
	case "summary":
		if class, ok := tag.classAttr(); ok && class == "hideme" {
			return startTagSkip
		}
	case "div", "span":
		for _, class := range skipClasses {
			if tag.hasClassToken(class) {
				return startTagSkip
			}
		}
		if class, ok := tag.classAttr(); ok && class == "item-name" {
			w.pushStr("`")
		}
	}

	return startTagContinue
}

// endTag emits the closing Markdown for an element.
func (w *MarkdownWriter) endTag(tag htmlElement) {
	switch tag.tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		w.pushStr("\n\n")
	case "code":
		if !w.isInside("pre") {
			w.pushStr("`")
		}
	case "pre":
		w.pushStr("\n```\n")
	case "ul", "ol":
		w.pushNewline()
	case "li":
		w.pushNewline()
	case "div":
		if class, ok := tag.classAttr(); ok && class == "item-name" {
			w.pushStr("`: ")
		}
	}
}

// visitText emits a text node. Inside a pre block the text is preserved
// byte-for-byte; elsewhere hard line breaks and the section-sign anchor
// glyph rustdoc places next to headings are trimmed from both ends.
func (w *MarkdownWriter) visitText(text string) {
	if w.isInside("pre") {
		w.pushStr(text)
		return
	}

	w.pushStr(strings.Trim(text, "\n\r§"))
}
