package driving

import (
	"context"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

// CardService lists project cards for display.
type CardService interface {
	// Cards returns all project cards sorted by star count descending,
	// with corpus order as the tie-break. A failed star fetch degrades
	// that card to zero stars rather than failing the listing.
	Cards(ctx context.Context) ([]domain.Card, error)
}
