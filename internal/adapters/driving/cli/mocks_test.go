package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driving"
)

// mockConvertService implements driving.ConvertService for testing.
type mockConvertService struct {
	page  *domain.Page
	pages []domain.Page
	err   error

	lastRaw      *domain.RawPage
	lastCrate    string
	lastVersion  string
	lastItemPath string
	lastOpts     driving.FetchOptions
	cleared      bool
}

func (m *mockConvertService) ConvertHTML(_ context.Context, raw *domain.RawPage) (*domain.Page, error) {
	m.lastRaw = raw
	if m.err != nil {
		return nil, m.err
	}
	if m.page != nil {
		return m.page, nil
	}
	return &domain.Page{
		ID:       "page-1",
		URI:      raw.URI,
		Markdown: "# Converted",
	}, nil
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
	if m.err != nil {
		return nil, m.err
	}
	if m.page != nil {
		return m.page, nil
	}
	return &domain.Page{
		ID:       "page-1",
		URI:      "https://docs.rs/" + crate,
		Crate:    crate,
		Version:  version,
		Title:    "Crate " + crate,
		Markdown: "# Crate " + crate,
	}, nil
}

func (m *mockConvertService) CachedPages(_ context.Context) ([]domain.Page, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pages, nil
}

func (m *mockConvertService) ClearCache(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = true
	return nil
}

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key]; ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	if v, ok := m.values[key]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 0
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Delete(key string) error {
	delete(m.values, key)
	return nil
}

// setupConvertTest swaps in a mock convert service so the persistent
// pre-run does not wire the real adapter stack.
func setupConvertTest(mock *mockConvertService) func() {
	oldService := convertService
	convertService = mock
	return func() {
		convertService = oldService
	}
}

// samplePageTime is a fixed timestamp for cache listing tests.
var samplePageTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
