package driven

import (
	"context"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

// SearchIndex provides full-text search over flattened documents.
// The index is built once after corpus load and never mutated
// incrementally; it is safe for concurrent queries after Build returns.
type SearchIndex interface {
	// Build constructs the index over the given documents. It replaces
	// any previous contents wholesale.
	Build(ctx context.Context, docs []domain.Document) error

	// QueryPrefix matches documents containing a token that begins
	// with the given term, ranked by field-weighted score.
	QueryPrefix(ctx context.Context, term string, limit int) ([]Hit, error)

	// QueryExact matches documents containing the given term exactly,
	// ranked by field-weighted score.
	QueryExact(ctx context.Context, term string, limit int) ([]Hit, error)

	// Close releases resources.
	Close() error
}

// Hit represents a search result from the index.
type Hit struct {
	// DocumentID is the matched document.
	DocumentID string

	// Score is the relevance score.
	Score float64
}
