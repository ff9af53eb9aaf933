package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageDocumentID(t *testing.T) {
	assert.Equal(t, "forge-page-0", PageDocumentID("forge", 0))
	assert.Equal(t, "forge-page-12", PageDocumentID("forge", 12))
}

func TestFlatten_CountEqualsProjectsPlusPages(t *testing.T) {
	projects := []Project{
		{
			ID:    "forge",
			Title: "Forge",
			Pages: []Page{
				{Title: "Install", URL: "https://x/forge/install"},
				{Title: "Usage", URL: "https://x/forge/usage"},
			},
		},
		{ID: "comms", Title: "Comms"},
		{
			ID:    "monarch",
			Title: "Monarch",
			Pages: []Page{
				{Title: "Overview", URL: "https://x/monarch/overview"},
			},
		},
	}

	docs := Flatten(projects)
	require.Len(t, docs, 6) // 3 projects + 3 pages
}

func TestFlatten_ProjectDocument(t *testing.T) {
	projects := []Project{
		{
			ID:          "forge",
			Title:       "Forge",
			Category:    "Training",
			Description: "A training scheduler",
			Keywords:    "scheduler rl",
			URL:         "https://x/forge",
		},
	}

	docs := Flatten(projects)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "forge", doc.ID)
	assert.Equal(t, "Forge", doc.Title)
	assert.Equal(t, "A training scheduler scheduler rl", doc.Body)
	assert.Equal(t, "Training", doc.Category)
	assert.Equal(t, "https://x/forge", doc.URL)
	assert.Equal(t, "forge", doc.ProjectID)
}

func TestFlatten_PageDocument(t *testing.T) {
	projects := []Project{
		{
			ID:       "forge",
			Title:    "Forge",
			Category: "Training",
			Keywords: "scheduler rl",
			URL:      "https://x/forge",
			Pages: []Page{
				{
					Title:   "Install",
					URL:     "https://x/forge/install",
					Content: "pip install forge",
				},
			},
		},
	}

	docs := Flatten(projects)
	require.Len(t, docs, 2)

	page := docs[1]
	assert.Equal(t, "forge-page-0", page.ID)
	assert.Equal(t, "Install", page.Title)
	assert.Equal(t, "pip install forge scheduler rl", page.Body)
	assert.Equal(t, "Training", page.Category)
	assert.Equal(t, "https://x/forge/install", page.URL)
	assert.Equal(t, "forge", page.ProjectID)
}

func TestFlatten_MissingOptionalFields(t *testing.T) {
	// No keywords, no description: body degrades to empty, never fails.
	projects := []Project{
		{
			ID:    "bare",
			Title: "Bare",
			URL:   "https://x/bare",
			Pages: []Page{
				{Title: "Page", URL: "https://x/bare/p"},
			},
		},
	}

	docs := Flatten(projects)
	require.Len(t, docs, 2)
	assert.Equal(t, "", docs[0].Body)
	assert.Equal(t, "", docs[1].Body)
}

func TestFlatten_EmissionOrder(t *testing.T) {
	projects := []Project{
		{ID: "a", Pages: []Page{{Title: "a0"}, {Title: "a1"}}},
		{ID: "b", Pages: []Page{{Title: "b0"}}},
	}

	docs := Flatten(projects)
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"a", "a-page-0", "a-page-1", "b", "b-page-0"}, ids)
}

func TestFlatten_EmptyCorpus(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]Project{}))
}
