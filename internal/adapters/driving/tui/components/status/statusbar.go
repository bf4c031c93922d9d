// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/keymap"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/styles"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// Bar displays filter counts, layout mode and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	filtered int
	total    int
	mode     domain.ViewMode
	message  string
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (b *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return b, nil
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the counts, layout mode and any error message.
func (b *Bar) renderLeft() string {
	if b.message != "" {
		return b.styles.Error.Render(fmt.Sprintf("Error: %s", b.message))
	}
	counts := fmt.Sprintf("%d of %d records", b.filtered, b.total)
	return b.styles.Normal.Render(counts) + b.styles.Muted.Render(" | "+b.mode.String())
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	bindings := b.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		h := bind.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetCounts sets the filtered and total record counts.
func (b *Bar) SetCounts(filtered, total int) {
	b.filtered = filtered
	b.total = total
}

// Filtered returns the filtered record count.
func (b *Bar) Filtered() int {
	return b.filtered
}

// Total returns the total record count.
func (b *Bar) Total() int {
	return b.total
}

// SetMode sets the layout mode shown in the bar.
func (b *Bar) SetMode(mode domain.ViewMode) {
	b.mode = mode
}

// Mode returns the layout mode.
func (b *Bar) Mode() domain.ViewMode {
	return b.mode
}

// SetMessage sets an error message; empty clears it.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Hints returns the rendered hint bindings, for tests.
func (b *Bar) Hints() []key.Binding {
	return b.keymap.ShortHelp()
}
