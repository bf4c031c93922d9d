package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.CycleFocus.Keys(), "tab")
	assert.Contains(t, km.ToggleView.Keys(), "v")
	assert.Contains(t, km.Prev.Keys(), "h")
	assert.Contains(t, km.Next.Keys(), "l")
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("down", km.Down))
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()
	require.NotEmpty(t, km.ShortHelp())
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()
	rows := km.FullHelp()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.NotEmpty(t, row)
	}
}
