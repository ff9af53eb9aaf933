package driven

import (
	"context"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

// CorpusSource loads the corpus artifact describing all projects and
// their sub-pages. Backed by an HTTP or file JSON source.
type CorpusSource interface {
	// Load fetches and decodes the corpus. A failed load surfaces an
	// error here; the corpus service turns it into an empty index
	// rather than propagating it further.
	Load(ctx context.Context) ([]domain.Project, error)
}

// CardSource loads the flat project list that backs the cards listing
// (projects.json). Backed by an HTTP or file JSON source.
type CardSource interface {
	// Load fetches and decodes the card list in corpus order.
	Load(ctx context.Context) ([]domain.Card, error)
}
