// Package table renders filtered records as a column-aligned table.
package table

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/styles"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

// Table displays records as rows with a highlighted selection.
type Table struct {
	records  []domain.Record
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewTable creates a new table component.
func NewTable(s *styles.Styles) *Table {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Table{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the table.
func (t *Table) Init() tea.Cmd {
	return nil
}

// Update handles table navigation messages.
func (t *Table) Update(msg tea.Msg) (*Table, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			t.MoveUp()
		case "down", "j":
			t.MoveDown()
		}
	}
	return t, nil
}

// View renders the header and the visible window of rows.
func (t *Table) View() string {
	if len(t.records) == 0 {
		return t.styles.Muted.Render("No records match.")
	}

	titleW, catW, periodW, custW := t.columnWidths()
	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s",
		titleW, "TITLE", catW, "CATEGORY", periodW, "TIME PERIOD", custW, "CUSTODIAN")

	lines := []string{t.styles.Subtitle.Render(header)}

	visibleCount := t.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}
	start := 0
	if t.selected >= visibleCount {
		start = t.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(t.records) {
		end = len(t.records)
	}

	for i := start; i < end; i++ {
		rec := &t.records[i]
		row := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s",
			titleW, clip(rec.Title, titleW),
			catW, clip(rec.Category, catW),
			periodW, clip(rec.TimePeriod, periodW),
			custW, clip(rec.Custodian, custW))
		if i == t.selected {
			lines = append(lines, t.styles.Selected.Render(row))
		} else {
			lines = append(lines, t.styles.Normal.Render(row))
		}
	}

	return strings.Join(lines, "\n")
}

// columnWidths splits the available width 40/20/20/20 between the columns.
func (t *Table) columnWidths() (titleW, catW, periodW, custW int) {
	usable := t.width - 8
	if usable < 40 {
		usable = 40
	}
	titleW = usable * 4 / 10
	catW = usable * 2 / 10
	periodW = usable * 2 / 10
	custW = usable - titleW - catW - periodW
	return titleW, catW, periodW, custW
}

func clip(s string, limit int) string {
	r := []rune(s)
	if limit <= 3 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// SetRecords replaces the table contents and resets the selection.
func (t *Table) SetRecords(records []domain.Record) {
	t.records = records
	t.selected = 0
}

// Records returns the current records.
func (t *Table) Records() []domain.Record {
	return t.records
}

// Selected returns the index of the selected row.
func (t *Table) Selected() int {
	return t.selected
}

// SelectedRecord returns the currently selected record, or nil if none.
func (t *Table) SelectedRecord() *domain.Record {
	if len(t.records) == 0 || t.selected < 0 || t.selected >= len(t.records) {
		return nil
	}
	return &t.records[t.selected]
}

// MoveUp moves selection up.
func (t *Table) MoveUp() {
	if t.selected > 0 {
		t.selected--
	}
}

// MoveDown moves selection down.
func (t *Table) MoveDown() {
	if t.selected < len(t.records)-1 {
		t.selected++
	}
}

// SetDimensions sets the component dimensions.
func (t *Table) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Count returns the number of records.
func (t *Table) Count() int {
	return len(t.records)
}

// IsEmpty returns whether the table is empty.
func (t *Table) IsEmpty() bool {
	return len(t.records) == 0
}
