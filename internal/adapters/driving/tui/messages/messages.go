// Package messages defines the Bubbletea messages exchanged inside the TUI.
package messages

import (
	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

// DebounceElapsed fires when the pause after a keystroke has elapsed.
// Token identifies the keystroke that scheduled it; a token older than
// the model's current one means the user kept typing and the message
// must be discarded.
type DebounceElapsed struct {
	Token int
	Query string
}

// SearchCompleted carries the results of an executed query. Token is the
// token of the query that produced it, so late responses from superseded
// queries never overwrite newer results.
type SearchCompleted struct {
	Token   int
	Query   string
	Results []domain.SearchResult
}
