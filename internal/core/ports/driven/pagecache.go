package driven

import (
	"context"
	"time"
)

// PageMeta is the cached metadata extracted from a crawled page.
type PageMeta struct {
	// URL is the page location, the cache key.
	URL string

	// Title is the extracted page title.
	Title string

	// Description is the extracted meta description.
	Description string

	// FetchedAt is when the page was last fetched.
	FetchedAt time.Time
}

// PageCache persists crawl metadata between generator runs so unchanged
// pages are not refetched. Backed by SQLite.
type PageCache interface {
	// Get retrieves cached metadata for a URL.
	// Returns domain.ErrNotFound when the URL has not been cached.
	Get(ctx context.Context, url string) (*PageMeta, error)

	// Put stores or updates metadata for a URL.
	Put(ctx context.Context, meta PageMeta) error

	// Close releases resources.
	Close() error
}
