package domain

import "time"

// LatestVersion is the docs.rs version selector for the newest release.
const LatestVersion = "latest"

// RawPage represents the raw HTML bytes of one rustdoc page before
// conversion. It is the fetcher's output.
type RawPage struct {
	// URI is the original location (file path or docs.rs URL).
	URI string

	// Crate is the crate name, when the page was fetched from docs.rs.
	Crate string

	// Version is the crate version ("latest" when unpinned).
	Version string

	// MIMEType is the content type (normally "text/html").
	MIMEType string

	// Content is the raw HTML bytes.
	Content []byte

	// Metadata contains fetcher-specific key-value pairs.
	Metadata map[string]any
}

// Page represents a converted documentation page.
// It is the canonical representation after conversion.
type Page struct {
	// ID is the unique identifier for the page.
	ID string

	// URI is the original location of the HTML source.
	URI string

	// Crate is the crate name, empty for local files.
	Crate string

	// Version is the crate version, empty for local files.
	Version string

	// Title is the human-readable title, taken from the first heading.
	Title string

	// Markdown is the full converted Markdown document.
	Markdown string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// FetchedAt is when the HTML source was obtained.
	FetchedAt time.Time

	// ConvertedAt is when the Markdown was produced.
	ConvertedAt time.Time
}
