package bleveindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

func buildTestIndex(t *testing.T, docs []domain.Document) *Index {
	t.Helper()
	idx := New()
	t.Cleanup(func() { _ = idx.Close() })
	require.NoError(t, idx.Build(context.Background(), docs))
	return idx
}

func TestIndex_QueryBeforeBuild(t *testing.T) {
	idx := New()
	defer idx.Close()

	hits, err := idx.QueryPrefix(context.Background(), "forge", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = idx.QueryExact(context.Background(), "forge", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndex_ExactMatch(t *testing.T) {
	idx := buildTestIndex(t, []domain.Document{
		{ID: "forge", Title: "Forge", Body: "A training scheduler scheduler rl"},
		{ID: "comms", Title: "Comms", Body: "Collective communication"},
	})

	hits, err := idx.QueryExact(context.Background(), "scheduler", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "forge", hits[0].DocumentID)
}

func TestIndex_ExactMatchIsCaseInsensitive(t *testing.T) {
	idx := buildTestIndex(t, []domain.Document{
		{ID: "forge", Title: "Forge", Body: "pip install forge"},
	})

	for _, q := range []string{"FORGE", "Forge", "forge"} {
		hits, err := idx.QueryExact(context.Background(), q, 10)
		require.NoError(t, err)
		require.Len(t, hits, 1, "query %q", q)
	}
}

func TestIndex_PrefixMatch(t *testing.T) {
	idx := buildTestIndex(t, []domain.Document{
		{ID: "forge", Title: "Forge", Body: "training"},
		{ID: "format", Title: "Formatter", Body: "code style"},
		{ID: "comms", Title: "Comms", Body: "communication"},
	})

	hits, err := idx.QueryPrefix(context.Background(), "for", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)

	ids := []string{hits[0].DocumentID, hits[1].DocumentID}
	assert.Contains(t, ids, "forge")
	assert.Contains(t, ids, "format")
}

func TestIndex_PrefixMatchLowercasesInput(t *testing.T) {
	idx := buildTestIndex(t, []domain.Document{
		{ID: "forge", Title: "Forge", Body: "training"},
	})

	hits, err := idx.QueryPrefix(context.Background(), "FOR", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
}

func TestIndex_TitleOutranksBody(t *testing.T) {
	// Identical match located in title vs only in body: the title
	// document must score strictly higher.
	idx := buildTestIndex(t, []domain.Document{
		{ID: "in-title", Title: "Forge", Body: "unrelated text here"},
		{ID: "in-body", Title: "Something Else", Body: "the forge word appears here"},
	})

	hits, err := idx.QueryExact(context.Background(), "forge", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "in-title", hits[0].DocumentID)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestIndex_CategoryOutranksBody(t *testing.T) {
	idx := buildTestIndex(t, []domain.Document{
		{ID: "in-category", Title: "Alpha", Category: "Training", Body: "nothing relevant"},
		{ID: "in-body", Title: "Beta", Category: "Other", Body: "training content inside"},
	})

	hits, err := idx.QueryExact(context.Background(), "training", 10)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "in-category", hits[0].DocumentID)
}

func TestIndex_KeywordsInBodyAreSearchable(t *testing.T) {
	// Keywords travel inside the body field after flattening.
	docs := domain.Flatten([]domain.Project{{
		ID:       "forge",
		Title:    "Forge",
		Keywords: "alpha",
		URL:      "https://x/forge",
	}})
	idx := buildTestIndex(t, docs)

	hits, err := idx.QueryExact(context.Background(), "alpha", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "forge", hits[0].DocumentID)
}

func TestIndex_ScenarioForge(t *testing.T) {
	docs := domain.Flatten([]domain.Project{{
		ID:          "forge",
		Title:       "Forge",
		Category:    "Training",
		Keywords:    "scheduler rl",
		URL:         "https://x/forge",
		Pages: []domain.Page{{
			Title:   "Install",
			URL:     "https://x/forge/install",
			Content: "pip install forge",
		}},
	}})
	idx := buildTestIndex(t, docs)

	// "forge" hits both documents; the title match ranks first.
	hits, err := idx.QueryExact(context.Background(), "forge", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "forge", hits[0].DocumentID)

	// "pip" only appears in the sub-page content.
	hits, err = idx.QueryExact(context.Background(), "pip", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "forge-page-0", hits[0].DocumentID)
}

func TestIndex_RebuildReplacesContents(t *testing.T) {
	idx := buildTestIndex(t, []domain.Document{
		{ID: "old", Title: "Old Document"},
	})

	require.NoError(t, idx.Build(context.Background(), []domain.Document{
		{ID: "new", Title: "New Document"},
	}))

	hits, err := idx.QueryExact(context.Background(), "old", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = idx.QueryExact(context.Background(), "new", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
}

func TestIndex_LimitRespected(t *testing.T) {
	var docs []domain.Document
	for i := 0; i < 20; i++ {
		docs = append(docs, domain.Document{
			ID:    domain.PageDocumentID("p", i),
			Title: "Common Term",
		})
	}
	idx := buildTestIndex(t, docs)

	hits, err := idx.QueryExact(context.Background(), "common", 5)
	require.NoError(t, err)
	assert.Len(t, hits, 5)
}

func TestIndex_Closed(t *testing.T) {
	idx := buildTestIndex(t, []domain.Document{{ID: "doc", Title: "Doc"}})
	require.NoError(t, idx.Close())

	_, err := idx.QueryExact(context.Background(), "doc", 10)
	assert.ErrorIs(t, err, domain.ErrIndexClosed)

	// Double close is harmless.
	assert.NoError(t, idx.Close())
}
