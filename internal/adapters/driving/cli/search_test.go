package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search the catalogue", searchCmd.Short)
}

func TestSearchCmd_RejectsTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "one", "two"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "ocean"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "TITLE")
	assert.Contains(t, buf.String(), "Ocean Survey")
	assert.NotContains(t, buf.String(), "Rainfall Stations")
}

func TestSearchCmd_NoArgsListsEverything(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Ocean Survey")
	assert.Contains(t, buf.String(), "Rainfall Stations")
	assert.Contains(t, buf.String(), "Harbour Sediment")
}

func TestSearchCmd_CategoryFilter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--category", "Marine"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchCategory = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Ocean Survey")
	assert.Contains(t, buf.String(), "Harbour Sediment")
	assert.NotContains(t, buf.String(), "Rainfall Stations")
}

func TestSearchCmd_ConjunctionOfFilters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--category", "Marine", "--period", "2001-2004"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchCategory = ""
		searchPeriod = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Ocean Survey")
	assert.NotContains(t, buf.String(), "Harbour Sediment")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "ocean"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Title\"")
	assert.Contains(t, buf.String(), "Ocean Survey")
	assert.Contains(t, buf.String(), "http://meta.example.org/1")
	assert.NotContains(t, buf.String(), "\"Raw\"")
}

func TestSearchCmd_CardsOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--cards", "ocean"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchCards = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Ocean Survey")
	assert.Contains(t, buf.String(), "Category:  Marine")
	assert.Contains(t, buf.String(), "1 record(s)")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "zzzz"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No records match.")
}

func TestOutputRecordsTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputRecordsTable(rootCmd, []domain.Record{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No records match")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lengthy...", truncate("lengthy string", 10))
	assert.Equal(t, "ab", truncate("ab", 2))
}
