package driving

import (
	"context"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
)

// ConvertService is the primary application service: it turns rustdoc
// HTML into Markdown pages, locally or by fetching from docs.rs.
type ConvertService interface {
	// ConvertHTML converts a raw HTML page into a Markdown page.
	ConvertHTML(ctx context.Context, raw *domain.RawPage) (*domain.Page, error)

	// FetchCrate fetches a crate page from docs.rs and converts it.
	// Version may be "latest"; itemPath may be empty for the crate root.
	// Cached conversions are returned without a network round trip
	// unless opts.SkipCache is set.
	FetchCrate(ctx context.Context, crate, version, itemPath string, opts FetchOptions) (*domain.Page, error)

	// CachedPages returns all cached pages, newest first.
	CachedPages(ctx context.Context) ([]domain.Page, error)

	// ClearCache removes every cached page.
	ClearCache(ctx context.Context) error
}

// FetchOptions controls cache behaviour for FetchCrate.
type FetchOptions struct {
	// SkipCache bypasses the cache on read; the fresh result is still
	// written back.
	SkipCache bool
}
