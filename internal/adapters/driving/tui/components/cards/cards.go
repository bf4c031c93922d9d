// Package cards renders filtered records as a navigable list of cards.
package cards

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/styles"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// linesPerCard is the rendered height of one card including its border.
const linesPerCard = 6

// CardList displays records as bordered cards in a navigable list.
type CardList struct {
	records  []domain.Record
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewCardList creates a new card list component.
func NewCardList(s *styles.Styles) *CardList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CardList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the card list.
func (c *CardList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (c *CardList) Update(msg tea.Msg) (*CardList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.MoveUp()
		case "down", "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// View renders the visible window of cards around the selection.
func (c *CardList) View() string {
	if len(c.records) == 0 {
		return c.styles.Muted.Render("No records match.")
	}

	visibleCount := c.height / linesPerCard
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if c.selected >= visibleCount {
		start = c.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(c.records) {
		end = len(c.records)
	}

	parts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		parts = append(parts, c.renderCard(i, &c.records[i]))
	}
	return strings.Join(parts, "\n")
}

// renderCard formats a single record card.
func (c *CardList) renderCard(index int, rec *domain.Record) string {
	inner := c.width - 6
	if inner < 20 {
		inner = 20
	}

	title := rec.Title
	if title == "" {
		title = "(Untitled)"
	}

	lines := []string{
		c.styles.Subtitle.Render(truncate(title, inner)),
		c.styles.Muted.Render(truncate(metaLine(rec), inner)),
	}
	if rec.Description != "" {
		lines = append(lines, c.styles.Normal.Render(truncate(rec.Description, inner)))
	}
	if rec.Link != "" {
		lines = append(lines, c.styles.Muted.Render(truncate(rec.Link, inner)))
	}

	card := c.styles.Card
	if index == c.selected {
		card = c.styles.CardSelected
	}
	return card.Width(c.width - 4).Render(strings.Join(lines, "\n"))
}

// metaLine joins the card's category, period and custodian fields.
func metaLine(rec *domain.Record) string {
	parts := make([]string, 0, 3)
	if rec.Category != "" {
		parts = append(parts, rec.Category)
	}
	if rec.TimePeriod != "" {
		parts = append(parts, rec.TimePeriod)
	}
	if rec.Custodian != "" {
		parts = append(parts, rec.Custodian)
	}
	if len(parts) == 0 {
		return "(no metadata)"
	}
	return strings.Join(parts, " | ")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 3 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// SetRecords replaces the list contents and resets the selection.
func (c *CardList) SetRecords(records []domain.Record) {
	c.records = records
	c.selected = 0
}

// Records returns the current records.
func (c *CardList) Records() []domain.Record {
	return c.records
}

// Selected returns the index of the selected record.
func (c *CardList) Selected() int {
	return c.selected
}

// SelectedRecord returns the currently selected record, or nil if none.
func (c *CardList) SelectedRecord() *domain.Record {
	if len(c.records) == 0 || c.selected < 0 || c.selected >= len(c.records) {
		return nil
	}
	return &c.records[c.selected]
}

// MoveUp moves selection up.
func (c *CardList) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves selection down.
func (c *CardList) MoveDown() {
	if c.selected < len(c.records)-1 {
		c.selected++
	}
}

// SetDimensions sets the component dimensions.
func (c *CardList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
}

// Count returns the number of records.
func (c *CardList) Count() int {
	return len(c.records)
}

// IsEmpty returns whether the list is empty.
func (c *CardList) IsEmpty() bool {
	return len(c.records) == 0
}
