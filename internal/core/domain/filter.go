package domain

// FilterState is the user's current query and filter selections.
// It is owned by the UI layer and read by the query engine on every
// recomputation; it is never persisted.
type FilterState struct {
	// Query is the free-text query. Empty matches every record.
	// The query is deliberately not trimmed: a whitespace-only query is a
	// real filter that almost never matches.
	Query string

	// Category constrains records to an exact category value.
	// Empty means unconstrained.
	Category string

	// TimePeriod constrains records to an exact time period value.
	// Empty means unconstrained.
	TimePeriod string
}

// IsZero reports whether no constraint is set.
func (s FilterState) IsZero() bool {
	return s.Query == "" && s.Category == "" && s.TimePeriod == ""
}

// ViewMode selects how the rendering layer lays out filtered records.
type ViewMode int

const (
	// ViewCards renders one bordered card per record.
	ViewCards ViewMode = iota

	// ViewTable renders records as rows of a column-aligned table.
	ViewTable
)

// String returns the string representation of the view mode.
func (v ViewMode) String() string {
	switch v {
	case ViewCards:
		return "cards"
	case ViewTable:
		return "table"
	default:
		return "unknown"
	}
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewCards {
		return ViewTable
	}
	return ViewCards
}

// Summary carries the counts and distinct filter values the rendering
// layer needs alongside the filtered records.
type Summary struct {
	// Total is the size of the full collection.
	Total int

	// Filtered is the size of the current filtered subset.
	Filtered int

	// Categories holds the distinct non-empty category values, sorted.
	Categories []string

	// TimePeriods holds the distinct non-empty time period values, sorted.
	TimePeriods []string
}
