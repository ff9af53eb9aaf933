package driving

import (
	"context"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search executes a query against the corpus index. It is total:
	// query failures and an unloaded corpus degrade to an empty result
	// list, never to an error. Results are deduplicated by URL and
	// truncated to the requested limit.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
