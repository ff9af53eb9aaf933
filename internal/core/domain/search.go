package domain

// DefaultResultLimit is the number of results a search returns when no
// explicit limit is requested.
const DefaultResultLimit = 10

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero or negative values
	// fall back to DefaultResultLimit.
	Limit int
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Document is the matched document.
	Document Document

	// Score is the relevance score. Results appended from the
	// exact-match pass keep their own score and are not re-ranked
	// into the prefix-match ordering.
	Score float64
}
