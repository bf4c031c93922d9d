// Package browse implements the combined query, filter and results view.
package browse

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/components/cards"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/components/input"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/components/picker"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/components/status"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/components/table"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/keymap"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/messages"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/styles"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driving"
)

// focusZone identifies which part of the view receives key input.
type focusZone int

const (
	focusQuery focusZone = iota
	focusCategory
	focusPeriod
	focusResults
)

// View is the browse view. Every change to the query or a filter
// recomputes the filtered records immediately.
type View struct {
	styles *styles.Styles
	keys   *keymap.KeyMap

	catalogue driving.CatalogueService
	queryPort driving.QueryService

	query    *input.QueryInput
	category *picker.Picker
	period   *picker.Picker
	cardList *cards.CardList
	tableView *table.Table
	statusBar *status.Bar

	focus   focusZone
	mode    domain.ViewMode
	state   domain.FilterState
	records []domain.Record

	width  int
	height int
}

// NewView creates the browse view over the given services, starting in the
// given layout mode.
func NewView(s *styles.Styles, catalogue driving.CatalogueService, query driving.QueryService, mode domain.ViewMode) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:    s,
		keys:      keymap.DefaultKeyMap(),
		catalogue: catalogue,
		queryPort: query,
		query:     input.NewQueryInput(s),
		category:  picker.New(s, "Category", catalogue.Categories()),
		period:    picker.New(s, "Period", catalogue.TimePeriods()),
		cardList:  cards.NewCardList(s),
		tableView: table.NewTable(s),
		statusBar: status.NewBar(s, nil),
		mode:      mode,
		width:     80,
		height:    24,
	}
	v.refilter()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.query.Init()
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.CatalogueReloaded:
		v.Refresh()
		return v, nil

	case messages.ErrorOccurred:
		v.statusBar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Cursor blink and other component messages go to the input.
	var cmd tea.Cmd
	v.query, cmd = v.query.Update(msg)
	return v, cmd
}

//nolint:gocognit // focus routing requires branching per zone
func (v *View) handleKey(msg tea.Msg) (*View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	keyStr := key.String()

	if keymap.Matches(keyStr, v.keys.CycleFocus) {
		v.cycleFocus()
		return v, nil
	}
	if keymap.Matches(keyStr, v.keys.Back) {
		v.ResetFilters()
		return v, nil
	}

	switch v.focus {
	case focusQuery:
		var cmd tea.Cmd
		before := v.query.Value()
		v.query, cmd = v.query.Update(msg)
		if v.query.Value() != before {
			v.refilter()
		}
		return v, cmd

	case focusCategory:
		v.handlePickerKey(v.category, keyStr)
		return v, nil

	case focusPeriod:
		v.handlePickerKey(v.period, keyStr)
		return v, nil

	case focusResults:
		if keymap.Matches(keyStr, v.keys.ToggleView) {
			v.ToggleMode()
			return v, nil
		}
		if keymap.Matches(keyStr, v.keys.Up) {
			v.cardList.MoveUp()
			v.tableView.MoveUp()
			return v, nil
		}
		if keymap.Matches(keyStr, v.keys.Down) {
			v.cardList.MoveDown()
			v.tableView.MoveDown()
			return v, nil
		}
	}
	return v, nil
}

func (v *View) handlePickerKey(p *picker.Picker, keyStr string) {
	switch {
	case keymap.Matches(keyStr, v.keys.Prev):
		p.Prev()
		v.refilter()
	case keymap.Matches(keyStr, v.keys.Next):
		p.Next()
		v.refilter()
	case keymap.Matches(keyStr, v.keys.ToggleView):
		v.ToggleMode()
	}
}

// cycleFocus moves focus query -> category -> period -> results -> query.
func (v *View) cycleFocus() {
	v.query.Blur()
	v.category.Blur()
	v.period.Blur()

	v.focus = (v.focus + 1) % 4
	switch v.focus {
	case focusQuery:
		v.query.Focus()
	case focusCategory:
		v.category.Focus()
	case focusPeriod:
		v.period.Focus()
	case focusResults:
	}
}

// refilter recomputes the filtered records from the current inputs.
func (v *View) refilter() {
	v.state = domain.FilterState{
		Query:      v.query.Value(),
		Category:   v.category.Value(),
		TimePeriod: v.period.Value(),
	}
	v.records = v.queryPort.Filter(v.state)

	v.cardList.SetRecords(v.records)
	v.tableView.SetRecords(v.records)
	v.statusBar.SetCounts(len(v.records), v.catalogue.Len())
	v.statusBar.SetMode(v.mode)
	v.statusBar.SetMessage("")
}

// Refresh repopulates the filter options from the catalogue and refilters.
// Called after a catalogue reload.
func (v *View) Refresh() {
	v.category.SetOptions(v.catalogue.Categories())
	v.period.SetOptions(v.catalogue.TimePeriods())
	v.refilter()
}

// ResetFilters clears the query and both filters.
func (v *View) ResetFilters() {
	v.query.Reset()
	v.category.Reset()
	v.period.Reset()
	v.refilter()
}

// ToggleMode switches between the cards and table layout.
func (v *View) ToggleMode() {
	v.mode = v.mode.Toggle()
	v.statusBar.SetMode(v.mode)
}

// View renders the browse view.
func (v *View) View() string {
	header := v.styles.Title.Render("Shoal Catalogue")
	filters := v.category.View() + "   " + v.period.View()

	var results string
	if v.mode == domain.ViewTable {
		results = v.tableView.View()
	} else {
		results = v.cardList.View()
	}

	return strings.Join([]string{
		header,
		v.query.View(),
		filters,
		"",
		results,
		v.statusBar.View(),
	}, "\n")
}

// SetDimensions sets the view dimensions and resizes the components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.query.SetWidth(width)
	v.statusBar.SetWidth(width)

	// Header, input block, filters and status bar take the rest.
	resultsHeight := height - 8
	if resultsHeight < 3 {
		resultsHeight = 3
	}
	v.cardList.SetDimensions(width, resultsHeight)
	v.tableView.SetDimensions(width, resultsHeight)
}

// FilterState returns the current filter state.
func (v *View) FilterState() domain.FilterState {
	return v.state
}

// Records returns the current filtered records.
func (v *View) Records() []domain.Record {
	return v.records
}

// SelectedRecord returns the record selected in the active layout.
func (v *View) SelectedRecord() *domain.Record {
	if v.mode == domain.ViewTable {
		return v.tableView.SelectedRecord()
	}
	return v.cardList.SelectedRecord()
}

// Mode returns the current layout mode.
func (v *View) Mode() domain.ViewMode {
	return v.mode
}

// QueryFocused reports whether key input currently types into the query.
func (v *View) QueryFocused() bool {
	return v.focus == focusQuery
}
