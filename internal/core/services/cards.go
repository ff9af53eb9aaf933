package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driving"
	"github.com/meta-pytorch/orgsite/internal/logger"
)

// Ensure CardService implements the interface.
var _ driving.CardService = (*CardService)(nil)

// CardService lists project cards sorted by repository popularity.
type CardService struct {
	source driven.CardSource
	stars  driven.StarProvider
	owner  string
}

// NewCardService creates a new card service.
// The stars provider is optional (can be nil); cards then keep zero stars.
func NewCardService(source driven.CardSource, stars driven.StarProvider, owner string) *CardService {
	return &CardService{
		source: source,
		stars:  stars,
		owner:  owner,
	}
}

// Cards loads the card list, decorates each card with its stargazer
// count, and sorts descending by stars. Corpus order is the tie-break
// (stable sort). A star fetch failure degrades that card to zero
// stars; it never fails the listing.
func (s *CardService) Cards(ctx context.Context) ([]domain.Card, error) {
	logger.Section("Card Listing")

	if s.source == nil {
		return nil, fmt.Errorf("cards: %w", domain.ErrCorpusUnavailable)
	}

	cards, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cards: %w", err)
	}
	logger.Debug("Loaded %d cards", len(cards))

	if s.stars != nil {
		for i := range cards {
			if cards[i].Repo == "" {
				continue
			}
			count, err := s.stars.Stars(ctx, s.owner, cards[i].Repo)
			if err != nil {
				logger.Warn("Star count for %s/%s failed: %v", s.owner, cards[i].Repo, err)
				continue
			}
			cards[i].Stars = count
		}
	} else {
		logger.Debug("No star provider configured, cards keep zero stars")
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Stars > cards[j].Stars
	})

	return cards, nil
}
