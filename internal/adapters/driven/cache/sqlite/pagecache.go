package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
)

// Ensure PageCache implements the interface.
var _ driven.PageCache = (*PageCache)(nil)

// PageCache is a SQLite-backed cache of crawled page metadata.
type PageCache struct {
	db   *sql.DB
	path string
}

// NewPageCache opens (or creates) the cache database at the given
// path. Parent directories are created as needed.
func NewPageCache(path string) (*PageCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	// WAL mode for better concurrency between crawl workers.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS pages (
			url         TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			fetched_at  INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &PageCache{db: db, path: path}, nil
}

// Get retrieves cached metadata for a URL.
// Returns domain.ErrNotFound when the URL has not been cached.
func (c *PageCache) Get(ctx context.Context, url string) (*driven.PageMeta, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT url, title, description, fetched_at FROM pages WHERE url = ?
	`, url)

	var meta driven.PageMeta
	var fetchedAt int64
	err := row.Scan(&meta.URL, &meta.Title, &meta.Description, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached page: %w", err)
	}

	meta.FetchedAt = time.Unix(fetchedAt, 0).UTC()
	return &meta, nil
}

// Put stores or updates metadata for a URL.
func (c *PageCache) Put(ctx context.Context, meta driven.PageMeta) error {
	if meta.URL == "" {
		return domain.ErrInvalidInput
	}

	fetchedAt := meta.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (url, title, description, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			fetched_at = excluded.fetched_at
	`, meta.URL, meta.Title, meta.Description, fetchedAt.Unix())

	if err != nil {
		return fmt.Errorf("caching page: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *PageCache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *PageCache) Path() string {
	return c.path
}
