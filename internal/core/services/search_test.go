package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
)

// loadedCorpus builds a ready corpus service over the given documents.
func loadedCorpus(t *testing.T, docs []domain.Document) *CorpusService {
	t.Helper()

	// Wrap documents back into single-page projects so Flatten yields
	// exactly the documents we want, keeping their IDs and URLs.
	svc := NewCorpusService(&mockCorpusSource{}, &mockSearchIndex{})
	byID := make(map[string]domain.Document, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}
	svc.docs = byID
	svc.count = len(docs)
	svc.ready = true
	return svc
}

func searchDocs() []domain.Document {
	return []domain.Document{
		{ID: "forge", Title: "Forge", URL: "https://x/forge", ProjectID: "forge"},
		{ID: "forge-page-0", Title: "Install", URL: "https://x/forge/install", ProjectID: "forge"},
		{ID: "comms", Title: "Comms", URL: "https://x/comms", ProjectID: "comms"},
		{ID: "monarch", Title: "Monarch", URL: "https://x/monarch", ProjectID: "monarch"},
	}
}

func TestSearchService_EmptyQuery(t *testing.T) {
	corpus := loadedCorpus(t, searchDocs())
	svc := NewSearchService(corpus, &mockSearchIndex{})

	for _, q := range []string{"", "   ", "\t\n"} {
		results, err := svc.Search(context.Background(), q, domain.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results, "query %q", q)
	}
}

func TestSearchService_IndexNotReady(t *testing.T) {
	corpus := NewCorpusService(&mockCorpusSource{}, &mockSearchIndex{})
	index := &mockSearchIndex{prefixHits: []driven.Hit{{DocumentID: "forge", Score: 1}}}
	svc := NewSearchService(corpus, index)

	// Corpus never loaded: queries return empty, not an error.
	results, err := svc.Search(context.Background(), "forge", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_UnionOrdering(t *testing.T) {
	corpus := loadedCorpus(t, searchDocs())
	index := &mockSearchIndex{
		prefixHits: []driven.Hit{
			{DocumentID: "forge", Score: 10},
			{DocumentID: "comms", Score: 2},
		},
		exactHits: []driven.Hit{
			{DocumentID: "comms", Score: 8},
			{DocumentID: "monarch", Score: 7},
		},
	}
	svc := NewSearchService(corpus, index)

	results, err := svc.Search(context.Background(), "forge", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Prefix results first in their ranked order; exact-only matches
	// appended afterwards even though monarch outscores comms.
	assert.Equal(t, "forge", results[0].Document.ID)
	assert.Equal(t, "comms", results[1].Document.ID)
	assert.Equal(t, "monarch", results[2].Document.ID)

	// The appended hit keeps its exact-pass score.
	assert.Equal(t, 7.0, results[2].Score)
}

func TestSearchService_PrefixFailureDegradesToExact(t *testing.T) {
	corpus := loadedCorpus(t, searchDocs())
	index := &mockSearchIndex{
		prefixErr: errors.New("syntax error"),
		exactHits: []driven.Hit{{DocumentID: "forge", Score: 3}},
	}
	svc := NewSearchService(corpus, index)

	results, err := svc.Search(context.Background(), "forge*", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "forge", results[0].Document.ID)
}

func TestSearchService_BothQueriesFail(t *testing.T) {
	corpus := loadedCorpus(t, searchDocs())
	index := &mockSearchIndex{
		prefixErr: errors.New("syntax error"),
		exactErr:  errors.New("syntax error"),
	}
	svc := NewSearchService(corpus, index)

	// Search never propagates an error; the worst outcome is empty.
	results, err := svc.Search(context.Background(), "???", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_DropsUnknownDocumentIDs(t *testing.T) {
	corpus := loadedCorpus(t, searchDocs())
	index := &mockSearchIndex{
		prefixHits: []driven.Hit{
			{DocumentID: "deleted", Score: 9},
			{DocumentID: "forge", Score: 1},
		},
	}
	svc := NewSearchService(corpus, index)

	results, err := svc.Search(context.Background(), "forge", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "forge", results[0].Document.ID)
}

func TestSearchService_DedupesByURL(t *testing.T) {
	// A project and one of its sub-pages share a URL in degenerate
	// data; first occurrence wins.
	docs := []domain.Document{
		{ID: "alpha", Title: "Alpha", URL: "https://x/shared", ProjectID: "alpha"},
		{ID: "alpha-page-0", Title: "Alpha Page", URL: "https://x/shared", ProjectID: "alpha"},
		{ID: "beta", Title: "Beta", URL: "https://x/beta", ProjectID: "beta"},
	}
	corpus := loadedCorpus(t, docs)
	index := &mockSearchIndex{
		prefixHits: []driven.Hit{
			{DocumentID: "alpha", Score: 5},
			{DocumentID: "alpha-page-0", Score: 4},
			{DocumentID: "beta", Score: 3},
		},
	}
	svc := NewSearchService(corpus, index)

	results, err := svc.Search(context.Background(), "alpha", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "alpha", results[0].Document.ID)
	assert.Equal(t, "beta", results[1].Document.ID)
}

func TestSearchService_TruncatesToLimit(t *testing.T) {
	var docs []domain.Document
	var hits []driven.Hit
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("doc-%d", i)
		docs = append(docs, domain.Document{
			ID:        id,
			Title:     id,
			URL:       fmt.Sprintf("https://x/%s", id),
			ProjectID: id,
		})
		hits = append(hits, driven.Hit{DocumentID: id, Score: float64(25 - i)})
	}
	corpus := loadedCorpus(t, docs)
	index := &mockSearchIndex{prefixHits: hits}
	svc := NewSearchService(corpus, index)

	results, err := svc.Search(context.Background(), "doc", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, results, domain.DefaultResultLimit)

	// No duplicate URLs in the returned page.
	seen := make(map[string]bool)
	for _, r := range results {
		assert.False(t, seen[r.Document.URL])
		seen[r.Document.URL] = true
	}
}

func TestSearchService_CustomLimit(t *testing.T) {
	corpus := loadedCorpus(t, searchDocs())
	index := &mockSearchIndex{
		prefixHits: []driven.Hit{
			{DocumentID: "forge", Score: 3},
			{DocumentID: "comms", Score: 2},
			{DocumentID: "monarch", Score: 1},
		},
	}
	svc := NewSearchService(corpus, index)

	results, err := svc.Search(context.Background(), "x", domain.SearchOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchService_Idempotent(t *testing.T) {
	corpus := loadedCorpus(t, searchDocs())
	index := &mockSearchIndex{
		prefixHits: []driven.Hit{
			{DocumentID: "forge", Score: 2},
			{DocumentID: "comms", Score: 1},
		},
		exactHits: []driven.Hit{{DocumentID: "monarch", Score: 1}},
	}
	svc := NewSearchService(corpus, index)

	first, err := svc.Search(context.Background(), "forge", domain.SearchOptions{})
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "forge", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
