package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("enter", km.Submit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("up", km.Up))
	assert.True(t, Matches("ctrl+p", km.Up))
	assert.False(t, Matches("enter", km.Quit))
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 4)
}
