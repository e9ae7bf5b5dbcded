package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/rustdoc-md/internal/adapters/driven/cache/sqlite/migrations"
	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Ensure Store implements the interface.
var _ driven.PageCache = (*Store)(nil)

// Store is a SQLite-backed page cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite page cache at the specified data directory.
// If dataDir is empty, defaults to ~/.rustdoc-md/data/pages.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".rustdoc-md", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "pages.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_pages.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Get returns the cached page for a key.
func (s *Store) Get(ctx context.Context, key string) (*domain.Page, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, uri, crate, version, title, markdown, metadata, fetched_at, converted_at
		FROM pages WHERE cache_key = ?
	`, key)

	page, err := scanPage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting page: %w", err)
	}

	return page, nil
}

// Put stores a converted page, replacing any previous entry for the key.
func (s *Store) Put(ctx context.Context, key string, page *domain.Page) error {
	if key == "" || page == nil {
		return domain.ErrInvalidInput
	}

	metadataJSON, err := json.Marshal(page.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (cache_key, id, uri, crate, version, title, markdown, metadata, fetched_at, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			id = excluded.id,
			uri = excluded.uri,
			crate = excluded.crate,
			version = excluded.version,
			title = excluded.title,
			markdown = excluded.markdown,
			metadata = excluded.metadata,
			fetched_at = excluded.fetched_at,
			converted_at = excluded.converted_at
	`, key, page.ID, page.URI, page.Crate, page.Version, page.Title, page.Markdown,
		string(metadataJSON), page.FetchedAt.UTC(), page.ConvertedAt.UTC())
	if err != nil {
		return fmt.Errorf("storing page: %w", err)
	}

	return nil
}

// List returns all cached pages ordered by most recently converted.
func (s *Store) List(ctx context.Context) ([]domain.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, uri, crate, version, title, markdown, metadata, fetched_at, converted_at
		FROM pages ORDER BY converted_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer rows.Close()

	var pages []domain.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		pages = append(pages, *page)
	}

	return pages, rows.Err()
}

// Purge removes every cached page.
func (s *Store) Purge(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM pages"); err != nil {
		return fmt.Errorf("purging pages: %w", err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanPage.
type scanner interface {
	Scan(dest ...any) error
}

// scanPage reads one page row.
func scanPage(row scanner) (*domain.Page, error) {
	var (
		page         domain.Page
		metadataJSON string
		fetchedAt    time.Time
		convertedAt  time.Time
	)

	err := row.Scan(&page.ID, &page.URI, &page.Crate, &page.Version, &page.Title,
		&page.Markdown, &metadataJSON, &fetchedAt, &convertedAt)
	if err != nil {
		return nil, err
	}

	page.FetchedAt = fetchedAt
	page.ConvertedAt = convertedAt

	if metadataJSON != "" && metadataJSON != jsonNull {
		if err := json.Unmarshal([]byte(metadataJSON), &page.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshalling metadata: %w", err)
		}
	}

	return &page, nil
}
