// Package tui implements the interactive search terminal UI following
// the Elm architecture.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/components/input"
	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/components/list"
	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/components/status"
	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/keymap"
	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/messages"
	"github.com/meta-pytorch/orgsite/internal/adapters/driving/tui/styles"
	"github.com/meta-pytorch/orgsite/internal/core/domain"
	"github.com/meta-pytorch/orgsite/internal/core/ports/driving"
)

// DefaultDebounce is the pause after a keystroke before a query runs.
const DefaultDebounce = 150 * time.Millisecond

// App is the live-search TUI. Queries run as the user types: each
// keystroke bumps a monotonic token and schedules a debounced search, and
// only messages carrying the current token are honoured, so the latest
// query always wins regardless of completion order. Enter skips the
// debounce.
type App struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	search   driving.SearchService
	ctx      context.Context
	debounce time.Duration
	limit    int

	token  int
	query  string
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application.
func NewApp(search driving.SearchService) (*App, error) {
	if search == nil {
		return nil, ErrNoSearchService
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewResultList(s),
		statusbar: status.NewBar(s, km),
		search:    search,
		ctx:       context.Background(),
		debounce:  DefaultDebounce,
		width:     80,
		height:    24,
	}, nil
}

// WithContext sets the context used for queries.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithDebounce overrides the keystroke debounce interval.
func (a *App) WithDebounce(d time.Duration) *App {
	if d > 0 {
		a.debounce = d
	}
	return a
}

// WithLimit sets the result limit passed on each query. Zero leaves
// the search service's default in place.
func (a *App) WithLimit(limit int) *App {
	if limit > 0 {
		a.limit = limit
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("orgsite - Docs Search"),
		a.input.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.DebounceElapsed:
		if msg.Token != a.token {
			return a, nil
		}
		return a, a.performSearch(msg.Token, msg.Query)

	case messages.SearchCompleted:
		if msg.Token != a.token {
			return a, nil
		}
		a.list.SetResults(msg.Results)
		a.statusbar.SetState(status.StateResults)
		a.statusbar.SetResultCount(len(msg.Results))
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Clear):
		if a.input.Value() == "" {
			return a, tea.Quit
		}
		a.token++
		a.query = ""
		a.input.SetValue("")
		a.list.Clear()
		a.statusbar.Clear()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Up):
		a.list.MoveUp()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Down):
		a.list.MoveDown()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Submit):
		a.token++
		a.query = a.input.Value()
		a.statusbar.SetState(status.StateSearching)
		return a, a.performSearch(a.token, a.query)
	}

	// Everything else edits the query.
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if a.input.Value() != a.query {
		a.query = a.input.Value()
		a.token++
		a.statusbar.SetState(status.StateSearching)
		return a, tea.Batch(cmd, a.scheduleSearch(a.token, a.query))
	}
	return a, cmd
}

// scheduleSearch arms the debounce timer for the given keystroke token.
func (a *App) scheduleSearch(token int, query string) tea.Cmd {
	return tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return messages.DebounceElapsed{Token: token, Query: query}
	})
}

// performSearch runs the query off the update loop.
func (a *App) performSearch(token int, query string) tea.Cmd {
	return func() tea.Msg {
		results, _ := a.search.Search(a.ctx, query, domain.SearchOptions{Limit: a.limit})
		return messages.SearchCompleted{Token: token, Query: query, Results: results}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.styles.Title.Render("orgsite"),
		"",
		a.input.View(),
		"",
		a.list.View(),
		"",
		a.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	a.input.SetWidth(width)
	a.list.SetDimensions(width, height-8)
	a.statusbar.SetWidth(width)
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.query
}

// Token returns the current request token.
func (a *App) Token() int {
	return a.token
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.list.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.list.Selected()
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}
