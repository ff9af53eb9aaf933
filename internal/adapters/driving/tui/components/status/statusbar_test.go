package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar_States(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)

	assert.Contains(t, b.View(), "Ready")

	b.SetState(StateSearching)
	assert.Contains(t, b.View(), "Searching...")

	b.SetState(StateResults)
	b.SetResultCount(7)
	assert.Contains(t, b.View(), "7 results")

	b.Clear()
	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, 0, b.ResultCount())
}

func TestBar_ShowsKeyHints(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)

	view := b.View()
	assert.Contains(t, view, "enter: search now")
	assert.Contains(t, view, "ctrl+c: quit")
}

func TestBar_RendersOnOneLine(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(120)

	// Content plus the style's padding must fit the set width, so the
	// bar never wraps.
	assert.NotContains(t, b.View(), "\n")

	b.SetState(StateResults)
	b.SetResultCount(10)
	assert.NotContains(t, b.View(), "\n")
}
