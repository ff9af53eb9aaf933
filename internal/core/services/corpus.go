package services

import (
	"context"
	"sync"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driven"
	"github.com/meta-pytorch/orgsite/internal/logger"
)

// CorpusService owns the corpus lifecycle: it loads the corpus
// artifact once, flattens it into documents, and builds the search
// index over them. The document set and index are write-once; after
// Load returns they are only ever read.
type CorpusService struct {
	source driven.CorpusSource
	index  driven.SearchIndex

	mu    sync.RWMutex
	docs  map[string]domain.Document
	count int
	ready bool
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(source driven.CorpusSource, index driven.SearchIndex) *CorpusService {
	return &CorpusService{
		source: source,
		index:  index,
		docs:   make(map[string]domain.Document),
	}
}

// Load fetches the corpus, flattens it, and builds the index.
// Failures are logged and leave the index empty: search becomes a
// no-op returning zero results. Load never fails the caller and there
// is no retry; a failed load is terminal until the next process start.
func (s *CorpusService) Load(ctx context.Context) {
	logger.Section("Corpus Load")

	if s.source == nil {
		logger.Warn("No corpus source configured, search index left empty")
		return
	}

	projects, err := s.source.Load(ctx)
	if err != nil {
		logger.Warn("Corpus load failed: %v (search index left empty)", err)
		return
	}
	logger.Debug("Corpus: %d projects", len(projects))

	docs := domain.Flatten(projects)
	logger.Debug("Flattened to %d documents", len(docs))

	if s.index != nil {
		if err := s.index.Build(ctx, docs); err != nil {
			logger.Warn("Index build failed: %v (search index left empty)", err)
			return
		}
	}

	byID := make(map[string]domain.Document, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}

	s.mu.Lock()
	s.docs = byID
	s.count = len(docs)
	s.ready = true
	s.mu.Unlock()

	logger.Info("Corpus ready: %d documents indexed", len(docs))
}

// Ready reports whether the index has finished building.
// Queries issued before this returns true yield empty results.
func (s *CorpusService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Document looks up a flattened document by ID.
func (s *CorpusService) Document(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Count returns the number of flattened documents.
func (s *CorpusService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}
