package mcp

import (
	"context"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driving"
)

// mockConvertService is a mock implementation of driving.ConvertService.
type mockConvertService struct {
	page  *domain.Page
	pages []domain.Page
	err   error

	lastCrate    string
	lastVersion  string
	lastItemPath string
	lastOpts     driving.FetchOptions
	lastRaw      *domain.RawPage
}

func (m *mockConvertService) ConvertHTML(_ context.Context, raw *domain.RawPage) (*domain.Page, error) {
	m.lastRaw = raw
	return m.page, m.err
}

func (m *mockConvertService) FetchCrate(
	_ context.Context,
	crate, version, itemPath string,
	opts driving.FetchOptions,
) (*domain.Page, error) {
	m.lastCrate = crate
	m.lastVersion = version
	m.lastItemPath = itemPath
	m.lastOpts = opts
	return m.page, m.err
}

func (m *mockConvertService) CachedPages(_ context.Context) ([]domain.Page, error) {
	return m.pages, m.err
}

func (m *mockConvertService) ClearCache(_ context.Context) error {
	return m.err
}
