// Package list provides the result list component for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/styles"
	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

// ResultList displays search results in a navigable list.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
	searched bool
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 16,
	}
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		if r.searched {
			return r.styles.Muted.Render("No results")
		}
		return r.styles.Muted.Render("Start typing to search")
	}

	lines := make([]string, 0, len(r.results)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results)))
	lines = append(lines, header, "")

	for i := range r.results {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single search result: title with category on the
// first line, URL underneath.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Document.Title
	if title == "" {
		title = "(Untitled)"
	}
	if result.Document.Category != "" {
		title += "  [" + result.Document.Category + "]"
	}

	maxLen := r.width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	if len(title) > maxLen {
		title = title[:maxLen-3] + "..."
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator + title)
	} else {
		titleLine = r.styles.Normal.Render(indicator + title)
	}

	url := result.Document.URL
	if len(url) > maxLen {
		url = url[:maxLen-3] + "..."
	}
	urlLine := r.styles.Muted.Render("    " + url)

	return titleLine + "\n" + urlLine
}

// SetResults updates the result list and resets the selection.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
	r.searched = true
}

// Clear empties the list and returns to the pre-search hint.
func (r *ResultList) Clear() {
	r.results = nil
	r.selected = 0
	r.searched = false
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}
