package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRawRecord_Get tests exact-name lookup over the ordered field list.
func TestRawRecord_Get(t *testing.T) {
	rec := RawRecord{
		{Name: "Title", Value: "T"},
		{Name: "Description", Value: "first"},
		{Name: "Description", Value: "second"},
	}

	v, ok := rec.Get("Description")
	require.True(t, ok)
	assert.Equal(t, "first", v, "first field in source order wins")

	_, ok = rec.Get("description")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = rec.Get("Missing")
	assert.False(t, ok)
}

// TestRawRecord_Value tests the trimmed optional-to-default coercion.
func TestRawRecord_Value(t *testing.T) {
	rec := RawRecord{
		{Name: "Citation", Value: "  Smith 2001  "},
		{Name: "Empty", Value: ""},
	}

	assert.Equal(t, "Smith 2001", rec.Value("Citation"))
	assert.Equal(t, "", rec.Value("Empty"))
	assert.Equal(t, "", rec.Value("Absent"))
}

// TestRecord_SearchText tests the fixed projection order.
func TestRecord_SearchText(t *testing.T) {
	rec := Record{
		Title:       "Ocean Survey",
		Citation:    "Cite",
		Description: "Desc",
		Keywords:    "kelp, reef",
		Category:    "Marine",
		Custodian:   "CSIRO",
		Link:        "http://example.org", // not part of the projection
	}

	assert.Equal(t, "Ocean Survey Cite Desc kelp, reef Marine CSIRO", rec.SearchText())
}

// TestRecord_SearchText_EmptyFields tests that empty fields keep their slot.
func TestRecord_SearchText_EmptyFields(t *testing.T) {
	rec := Record{Title: "T"}
	assert.Equal(t, "T     ", rec.SearchText())
}

// TestFilterState_IsZero tests the unconstrained check.
func TestFilterState_IsZero(t *testing.T) {
	assert.True(t, FilterState{}.IsZero())
	assert.False(t, FilterState{Query: " "}.IsZero(), "whitespace query is a real constraint")
	assert.False(t, FilterState{Category: "Marine"}.IsZero())
	assert.False(t, FilterState{TimePeriod: "2001-2004"}.IsZero())
}

// TestViewMode_String tests view mode names.
func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "cards", ViewCards.String())
	assert.Equal(t, "table", ViewTable.String())
	assert.Equal(t, "unknown", ViewMode(99).String())
}

// TestViewMode_Toggle tests flipping between the two layouts.
func TestViewMode_Toggle(t *testing.T) {
	assert.Equal(t, ViewTable, ViewCards.Toggle())
	assert.Equal(t, ViewCards, ViewTable.Toggle())
}
