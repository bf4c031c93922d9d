package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryInput_FocusedByDefault(t *testing.T) {
	q := NewQueryInput(nil)
	assert.True(t, q.Focused())
	assert.Empty(t, q.Value())
}

func TestQueryInput_Typing(t *testing.T) {
	q := NewQueryInput(nil)

	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("reef")})

	assert.Equal(t, "reef", q.Value())
}

func TestQueryInput_SetValueAndReset(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetValue("tide")
	assert.Equal(t, "tide", q.Value())

	q.Reset()
	assert.Empty(t, q.Value())
}

func TestQueryInput_FocusBlur(t *testing.T) {
	q := NewQueryInput(nil)

	q.Blur()
	assert.False(t, q.Focused())

	q.Focus()
	assert.True(t, q.Focused())
}

func TestQueryInput_BlurredIgnoresTyping(t *testing.T) {
	q := NewQueryInput(nil)
	q.Blur()

	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Empty(t, q.Value())
}

func TestQueryInput_SetWidthFloor(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetWidth(10)
	assert.Equal(t, 10, q.Width())

	q.SetWidth(120)
	assert.Equal(t, 120, q.Width())
}

func TestQueryInput_ViewContainsLabel(t *testing.T) {
	q := NewQueryInput(nil)
	require.Contains(t, q.View(), "Query:")
}
