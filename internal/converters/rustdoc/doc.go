// Package rustdoc provides a Converter implementation for rustdoc-generated
// HTML pages. It renders headings, code blocks, inline code, lists, and the
// rustdoc "item-name: description" layout as Markdown, while discarding
// navigational chrome (sidebars, script tags, hidden summaries).
//
// The rendering policy is fixed and rustdoc-specific; this is not a general
// HTML to Markdown converter.
package rustdoc
