// Package input provides the query input component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/styles"
)

const (
	// labelWidth is what the "Search: " label and input border consume
	// of the terminal row.
	labelWidth = 12

	minFieldWidth = 20
	maxQueryLen   = 256
)

// SearchInput is the single query field driving the live search. It
// holds focus for the whole session; results are navigated without
// leaving it.
type SearchInput struct {
	field  textinput.Model
	styles *styles.Styles
	width  int
}

// NewSearchInput creates a focused search input.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Placeholder = "Search projects and docs..."
	field.CharLimit = maxQueryLen
	field.Width = 50
	field.Focus()

	return &SearchInput{field: field, styles: s, width: 50}
}

// Init starts the cursor blink.
func (in *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the underlying field.
func (in *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	in.field, cmd = in.field.Update(msg)
	return in, cmd
}

// View renders the labelled input row.
func (in *SearchInput) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		in.styles.Title.Render("Search: "),
		in.styles.InputField.Render(in.field.View()),
	)
}

// Value returns the current query text.
func (in *SearchInput) Value() string {
	return in.field.Value()
}

// SetValue replaces the query text.
func (in *SearchInput) SetValue(value string) {
	in.field.SetValue(value)
}

// SetWidth resizes the row, giving the field whatever the label and
// border leave over.
func (in *SearchInput) SetWidth(width int) {
	in.width = width
	in.field.Width = max(width-labelWidth, minFieldWidth)
}

// Width returns the current row width.
func (in *SearchInput) Width() int {
	return in.width
}

// Reset clears the query.
func (in *SearchInput) Reset() {
	in.field.Reset()
}
