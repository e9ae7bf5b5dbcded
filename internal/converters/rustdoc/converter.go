package rustdoc

import (
	"bytes"
	"context"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

// Converter handles rustdoc HTML pages.
type Converter struct{}

// New creates a new rustdoc converter.
func New() *Converter {
	return &Converter{}
}

// SupportedMIMETypes returns the MIME types this converter handles.
func (c *Converter) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Convert transforms a raw rustdoc page into a Markdown page.
// Parsing is delegated to golang.org/x/net/html; the writer only walks
// the resulting tree.
func (c *Converter) Convert(_ context.Context, raw *domain.RawPage) (*domain.Page, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	root, err := html.Parse(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, err
	}

	markdown, err := NewMarkdownWriter().Run(root)
	if err != nil {
		return nil, err
	}

	page := domain.Page{
		ID:          uuid.New().String(),
		URI:         raw.URI,
		Crate:       raw.Crate,
		Version:     raw.Version,
		Title:       extractTitle(markdown, raw.URI),
		Markdown:    markdown,
		Metadata:    copyMetadata(raw.Metadata),
		FetchedAt:   time.Now(),
		ConvertedAt: time.Now(),
	}

	if page.Metadata == nil {
		page.Metadata = make(map[string]any)
	}
	page.Metadata["mime_type"] = raw.MIMEType
	page.Metadata["format"] = "markdown"

	return &page, nil
}

// extractTitle extracts a title from the converted Markdown or falls back
// to the URI's last path segment.
func extractTitle(markdown, uri string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}

	// Fall back to the last meaningful path segment
	segment := path.Base(strings.TrimSuffix(uri, "/"))
	segment = strings.TrimSuffix(segment, path.Ext(segment))
	segment = strings.ReplaceAll(segment, "_", " ")
	return segment
}

// copyMetadata creates a shallow copy of metadata.
func copyMetadata(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
