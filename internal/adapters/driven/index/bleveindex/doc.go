// Package bleveindex provides an in-memory full-text index backed by
// Bleve. It implements the driven.SearchIndex interface.
//
// The index is rebuilt wholesale on every Build call; nothing is ever
// persisted. Three fields are indexed per document with relative
// relevance weights: title (x10), category (x2), and body (x1,
// baseline). Any monotonic scheme preserving those orderings would
// satisfy the search contract; the weights are applied as query-time
// boosts on a disjunction over the three fields.
package bleveindex
