package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusUnavailable indicates the corpus could not be fetched or
	// parsed. Search degrades to an empty index; this is never fatal.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrIndexNotReady indicates the search index has not finished
	// building. Queries issued before build completion return empty
	// results rather than failing.
	ErrIndexNotReady = errors.New("search index not ready")

	// ErrIndexClosed indicates the search index has been closed.
	ErrIndexClosed = errors.New("search index closed")

	// ErrStarsUnavailable indicates the star-count provider is not
	// configured. Cards degrade to zero stars.
	ErrStarsUnavailable = errors.New("star provider unavailable")
)
