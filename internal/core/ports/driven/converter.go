package driven

import (
	"context"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
)

// Converter transforms raw HTML pages into Markdown.
// Implementations encode a fixed rendering policy for a specific
// documentation generator (rustdoc being the only one today).
type Converter interface {
	// SupportedMIMETypes returns the MIME types this converter handles.
	SupportedMIMETypes() []string

	// Convert transforms a raw page into a converted page.
	Convert(ctx context.Context, raw *domain.RawPage) (*domain.Page, error)
}
