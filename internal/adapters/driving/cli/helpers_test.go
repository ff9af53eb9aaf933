package cli

import (
	"bytes"
	"context"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

// mockSearchService returns canned results for any query.
type mockSearchService struct {
	results []domain.SearchResult
	queries []string
	limits  []int
}

func (m *mockSearchService) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	m.limits = append(m.limits, opts.Limit)
	return m.results, nil
}

// mockCardService returns canned cards.
type mockCardService struct {
	cards []domain.Card
	err   error
}

func (m *mockCardService) Cards(_ context.Context) ([]domain.Card, error) {
	return m.cards, m.err
}

// setupTestServices installs mock services and returns a cleanup func.
func setupTestServices(search *mockSearchService, cards *mockCardService) func() {
	if search != nil {
		searchService = search
	}
	if cards != nil {
		cardService = cards
	}
	return func() {
		searchService = nil
		cardService = nil
	}
}

// execute runs the root command with args and captures output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
