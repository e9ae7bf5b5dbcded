package driven

import (
	"context"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
)

// Fetcher obtains rustdoc HTML pages from a remote documentation host.
type Fetcher interface {
	// Fetch retrieves the HTML page for a crate item.
	// Version may be "latest"; itemPath may be empty for the crate root.
	// Returns domain.ErrCrateNotFound when the host has no such page and
	// domain.ErrRateLimited when the host throttles the request.
	Fetch(ctx context.Context, crate, version, itemPath string) (*domain.RawPage, error)
}
