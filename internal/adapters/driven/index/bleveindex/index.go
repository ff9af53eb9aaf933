package bleveindex

import (
	"context"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// Field boosts. Relative multipliers, not absolute weights: a title
// match must outrank the identical match found only in the body.
const (
	titleBoost    = 10.0
	categoryBoost = 2.0
	bodyBoost     = 1.0
)

// indexDoc is the shape handed to bleve for indexing.
type indexDoc struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Body     string `json:"body"`
}

// Index is an in-memory Bleve index over flattened documents.
type Index struct {
	mu     sync.RWMutex
	idx    bleve.Index
	closed bool
}

// New creates a new, empty index. It accepts no queries until Build
// has been called; queries against an empty index return no hits.
func New() *Index {
	return &Index{}
}

// Build constructs the index over the given documents, replacing any
// previous contents wholesale.
func (x *Index) Build(_ context.Context, docs []domain.Document) error {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return err
	}

	batch := idx.NewBatch()
	for _, d := range docs {
		if err := batch.Index(d.ID, indexDoc{
			Title:    d.Title,
			Category: d.Category,
			Body:     d.Body,
		}); err != nil {
			_ = idx.Close()
			return err
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return err
	}

	x.mu.Lock()
	old := x.idx
	x.idx = idx
	x.closed = false
	x.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// QueryPrefix matches documents containing a token beginning with the
// given term, across all three fields with their boosts. The term is
// lowercased to line up with the analyzed token stream; prefix queries
// bypass the analyzer.
func (x *Index) QueryPrefix(ctx context.Context, term string, limit int) ([]driven.Hit, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}

	mk := func(field string, boost float64) query.Query {
		q := bleve.NewPrefixQuery(term)
		q.SetField(field)
		q.SetBoost(boost)
		return q
	}
	return x.run(ctx, bleve.NewDisjunctionQuery(
		mk("title", titleBoost),
		mk("category", categoryBoost),
		mk("body", bodyBoost),
	), limit)
}

// QueryExact matches documents containing the given term, across all
// three fields with their boosts. Match queries run the term through
// the field analyzer, so casing and punctuation are normalized.
func (x *Index) QueryExact(ctx context.Context, term string, limit int) ([]driven.Hit, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	mk := func(field string, boost float64) query.Query {
		q := bleve.NewMatchQuery(term)
		q.SetField(field)
		q.SetBoost(boost)
		return q
	}
	return x.run(ctx, bleve.NewDisjunctionQuery(
		mk("title", titleBoost),
		mk("category", categoryBoost),
		mk("body", bodyBoost),
	), limit)
}

// run executes a query and converts the hits.
func (x *Index) run(ctx context.Context, q query.Query, limit int) ([]driven.Hit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if x.closed {
		return nil, domain.ErrIndexClosed
	}
	if x.idx == nil {
		// Not built yet: empty results, not an error.
		return nil, nil
	}
	if limit <= 0 {
		limit = domain.DefaultResultLimit
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := x.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	hits := make([]driven.Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, driven.Hit{
			DocumentID: h.ID,
			Score:      h.Score,
		})
	}
	return hits, nil
}

// Close releases the index.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.closed {
		return nil
	}
	x.closed = true
	if x.idx == nil {
		return nil
	}
	err := x.idx.Close()
	x.idx = nil
	return err
}

// buildMapping defines the three indexed text fields. The standard
// analyzer tokenizes on word boundaries and lowercases, which gives
// the case-insensitive matching the search contract requires.
func buildMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Store = false
	text.IncludeInAll = false

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("category", text)
	doc.AddFieldMappingsAt("body", text)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}
