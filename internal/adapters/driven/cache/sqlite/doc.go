// Package sqlite provides a SQLite-backed crawl cache.
// It implements the driven.PageCache interface.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The cache
// stores page metadata (title, meta description) keyed by URL so the
// generator can skip refetching pages it has seen recently.
//
// The cache holds generator fetch metadata only; the search index
// itself is never persisted.
package sqlite
