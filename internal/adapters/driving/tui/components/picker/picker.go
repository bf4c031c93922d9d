// Package picker provides a horizontal value picker for the TUI filters.
package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/styles"
)

// allLabel is shown for the unconstrained selection.
const allLabel = "(all)"

// Picker cycles through a fixed set of filter values. The first position
// is always the unconstrained "(all)" selection.
type Picker struct {
	label    string
	options  []string
	selected int
	styles   *styles.Styles
	focused  bool
}

// New creates a picker with the given label and options.
func New(s *styles.Styles, label string, options []string) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Picker{
		label:   label,
		options: options,
		styles:  s,
	}
}

// Init initialises the picker.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles picker messages.
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	// Picker is passive; the owning view calls Next/Prev.
	return p, nil
}

// View renders the picker as "Label: < value >".
func (p *Picker) View() string {
	value := allLabel
	if p.selected > 0 {
		value = p.options[p.selected-1]
	}

	label := p.styles.Subtitle.Render(p.label + ": ")
	rendered := fmt.Sprintf("< %s >", value)
	if p.focused {
		return label + p.styles.Selected.Render(rendered)
	}
	if p.selected > 0 {
		return label + p.styles.Normal.Render(rendered)
	}
	return label + p.styles.Muted.Render(rendered)
}

// Value returns the selected option, or "" for the unconstrained selection.
func (p *Picker) Value() string {
	if p.selected == 0 {
		return ""
	}
	return p.options[p.selected-1]
}

// Next cycles forward, wrapping past the last option to "(all)".
func (p *Picker) Next() {
	p.selected++
	if p.selected > len(p.options) {
		p.selected = 0
	}
}

// Prev cycles backward, wrapping past "(all)" to the last option.
func (p *Picker) Prev() {
	p.selected--
	if p.selected < 0 {
		p.selected = len(p.options)
	}
}

// SetOptions replaces the options, keeping the current value selected when
// it is still present and falling back to "(all)" otherwise.
func (p *Picker) SetOptions(options []string) {
	current := p.Value()
	p.options = options
	p.selected = 0
	for i, opt := range options {
		if current != "" && opt == current {
			p.selected = i + 1
			return
		}
	}
}

// Options returns the current options.
func (p *Picker) Options() []string {
	return p.options
}

// Reset returns the picker to the unconstrained selection.
func (p *Picker) Reset() {
	p.selected = 0
}

// Focus marks the picker as focused.
func (p *Picker) Focus() {
	p.focused = true
}

// Blur removes focus from the picker.
func (p *Picker) Blur() {
	p.focused = false
}

// Focused returns whether the picker is focused.
func (p *Picker) Focused() bool {
	return p.focused
}

// Label returns the picker label.
func (p *Picker) Label() string {
	return p.label
}
