package driven

import (
	"context"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
)

// PageCache persists converted pages under caller-chosen keys.
// It is a fetch cache, not a search index: lookups are exact. Keys are
// built from the fetch coordinates (crate, version, item path) rather
// than the resolved URI, so "latest" lookups hit without a round trip.
type PageCache interface {
	// Get returns the cached page for a key.
	// Returns domain.ErrNotFound if the key has not been cached.
	Get(ctx context.Context, key string) (*domain.Page, error)

	// Put stores a converted page, replacing any previous entry for the key.
	Put(ctx context.Context, key string, page *domain.Page) error

	// List returns all cached pages ordered by most recently converted.
	List(ctx context.Context) ([]domain.Page, error)

	// Purge removes every cached page.
	Purge(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
