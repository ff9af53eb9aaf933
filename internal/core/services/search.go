package services

import (
	"context"
	"strings"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driving"
	"github.com/meta-pytorch/orgsite/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// documentLookup is the slice of CorpusService the search service
// needs: readiness gating and ID resolution.
type documentLookup interface {
	Ready() bool
	Document(id string) (domain.Document, bool)
}

// SearchService executes queries against the corpus index using a
// prefix-then-exact dual strategy.
type SearchService struct {
	corpus documentLookup
	index  driven.SearchIndex
}

// NewSearchService creates a new search service.
func NewSearchService(corpus *CorpusService, index driven.SearchIndex) *SearchService {
	return &SearchService{
		corpus: corpus,
		index:  index,
	}
}

// Search runs the query pipeline: prefix query, exact query, union,
// ID resolution, URL deduplication, truncation. It is total - query
// failures and an unready index degrade to empty results, and the
// returned error is always nil.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	if s.corpus == nil || !s.corpus.Ready() || s.index == nil {
		logger.Debug("Index not ready, returning no results")
		return []domain.SearchResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultResultLimit
	}

	// Overfetch so URL deduplication cannot starve the final page.
	internalLimit := limit * 3
	logger.Debug("Limit: %d, internal limit: %d", limit, internalLimit)

	hits := s.unionQuery(ctx, query, internalLimit)
	logger.Debug("Union: %d hits", len(hits))

	results := s.resolveAndDedupe(hits, limit)
	logger.Info("Final results: %d", len(results))

	return results, nil
}

// unionQuery runs the prefix query followed by the exact query and
// unions them: prefix hits keep their ranked order, then exact-only
// hits are appended in theirs. Exact-only matches are deliberately not
// re-ranked into score order; the appended ordering is part of the
// search contract.
func (s *SearchService) unionQuery(ctx context.Context, query string, limit int) []driven.Hit {
	prefixHits, err := s.index.QueryPrefix(ctx, query, limit)
	if err != nil {
		// Degrade to the exact pass alone.
		logger.Warn("Prefix query failed: %v (falling back to exact match)", err)
		prefixHits = nil
	}

	exactHits, err := s.index.QueryExact(ctx, query, limit)
	if err != nil {
		logger.Warn("Exact query failed: %v", err)
		exactHits = nil
	}

	seen := make(map[string]bool, len(prefixHits))
	union := make([]driven.Hit, 0, len(prefixHits)+len(exactHits))
	for _, h := range prefixHits {
		if seen[h.DocumentID] {
			continue
		}
		seen[h.DocumentID] = true
		union = append(union, h)
	}
	for _, h := range exactHits {
		if seen[h.DocumentID] {
			continue
		}
		seen[h.DocumentID] = true
		union = append(union, h)
	}

	return union
}

// resolveAndDedupe maps hits back to documents, drops hits whose
// backing document is missing, deduplicates by URL (first occurrence
// wins), and truncates to limit.
func (s *SearchService) resolveAndDedupe(hits []driven.Hit, limit int) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, limit)
	seenURL := make(map[string]bool, len(hits))

	for _, h := range hits {
		doc, ok := s.corpus.Document(h.DocumentID)
		if !ok {
			logger.Debug("Dropping hit with unknown document id %q", h.DocumentID)
			continue
		}
		if seenURL[doc.URL] {
			continue
		}
		seenURL[doc.URL] = true

		results = append(results, domain.SearchResult{
			Document: doc,
			Score:    h.Score,
		})
		if len(results) >= limit {
			break
		}
	}

	return results
}
