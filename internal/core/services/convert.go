package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driven"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driving"
	"github.com/custodia-labs/rustdoc-md/internal/logger"
)

// Ensure ConvertService implements the interface.
var _ driving.ConvertService = (*ConvertService)(nil)

// ConvertService turns rustdoc HTML into Markdown pages, locally or by
// fetching from docs.rs.
type ConvertService struct {
	converter driven.Converter
	fetcher   driven.Fetcher
	cache     driven.PageCache // optional
}

// NewConvertService creates a new convert service.
// Cache may be nil; conversion then always goes to the fetcher.
func NewConvertService(
	converter driven.Converter,
	fetcher driven.Fetcher,
	cache driven.PageCache,
) *ConvertService {
	return &ConvertService{
		converter: converter,
		fetcher:   fetcher,
		cache:     cache,
	}
}

// ConvertHTML converts a raw HTML page into a Markdown page.
func (s *ConvertService) ConvertHTML(ctx context.Context, raw *domain.RawPage) (*domain.Page, error) {
	page, err := s.converter.Convert(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("converting page: %w", err)
	}

	logger.Debug("converted %s (%d bytes of markdown)", page.URI, len(page.Markdown))
	return page, nil
}

// FetchCrate fetches a crate page from docs.rs and converts it.
func (s *ConvertService) FetchCrate(
	ctx context.Context,
	crate, version, itemPath string,
	opts driving.FetchOptions,
) (*domain.Page, error) {
	if version == "" {
		version = domain.LatestVersion
	}
	key := cacheKey(crate, version, itemPath)

	if s.cache != nil && !opts.SkipCache {
		page, err := s.cache.Get(ctx, key)
		if err == nil {
			logger.Debug("cache hit for %s", key)
			return page, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("cache lookup for %s: %v", key, err)
		}
	}

	raw, err := s.fetcher.Fetch(ctx, crate, version, itemPath)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", key, err)
	}

	page, err := s.converter.Convert(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", key, err)
	}

	if s.cache != nil {
		// Cache failures must not fail the conversion.
		if err := s.cache.Put(ctx, key, page); err != nil {
			logger.Warn("caching %s: %v", key, err)
		}
	}

	return page, nil
}

// CachedPages returns all cached pages, newest first.
func (s *ConvertService) CachedPages(ctx context.Context) ([]domain.Page, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheUnavailable
	}
	return s.cache.List(ctx)
}

// ClearCache removes every cached page.
func (s *ConvertService) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		return domain.ErrCacheUnavailable
	}
	return s.cache.Purge(ctx)
}

// cacheKey builds the canonical cache key for a fetch.
// Keying on the requested coordinates rather than the resolved URI keeps
// "latest" lookups cacheable even though docs.rs redirects them.
func cacheKey(crate, version, itemPath string) string {
	key := crate + "@" + version
	if itemPath != "" {
		key += "/" + strings.TrimPrefix(itemPath, "/")
	}
	return key
}
