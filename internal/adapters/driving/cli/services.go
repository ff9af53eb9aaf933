package cli

import (
	"context"

	"github.com/meta-pytorch/orgsite/internal/adapters/driven/corpus/httpjson"
	"github.com/meta-pytorch/orgsite/internal/adapters/driven/index/bleveindex"
	"github.com/meta-pytorch/orgsite/internal/adapters/driven/stars/github"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driving"
	"github.com/meta-pytorch/orgsite/internal/core/services"
)

// Test seams: when non-nil these replace the real service wiring.
var (
	searchService driving.SearchService
	cardService   driving.CardService
)

// buildSearchService loads the corpus and builds the in-memory index.
// Corpus failures degrade to an empty index rather than an error, so
// the commands still start.
func buildSearchService(ctx context.Context) driving.SearchService {
	if searchService != nil {
		return searchService
	}

	source := httpjson.NewCorpusSource(cfg.Corpus.IndexURL, nil)
	index := bleveindex.New()

	corpus := services.NewCorpusService(source, index)
	corpus.Load(ctx)

	return services.NewSearchService(corpus, index)
}

// buildCardService wires the card listing with GitHub star lookups.
func buildCardService(ctx context.Context) driving.CardService {
	if cardService != nil {
		return cardService
	}

	source := httpjson.NewCardSource(cfg.Corpus.CardsURL, nil)
	provider := github.NewProvider(ctx, cfg.GitHub.Token)

	return services.NewCardService(source, provider, cfg.GitHub.Org)
}
