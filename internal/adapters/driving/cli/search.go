package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

var (
	searchCategory string
	searchPeriod   string
	searchJSON     bool
	searchCards    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalogue",
	Long: `Filters catalogue records by free-text query, category and time period.
The query matches anywhere in a record's title, citation, description,
keywords, category or custodian, case-insensitively. All filters given
must match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "exact data category filter")
	searchCmd.Flags().StringVar(&searchPeriod, "period", "", "exact time period filter")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchCards, "cards", false, "render results as cards instead of a table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	state := domain.FilterState{
		Category:   searchCategory,
		TimePeriod: searchPeriod,
	}
	if len(args) == 1 {
		state.Query = args[0]
	}

	records := queryService.Filter(state)

	if searchJSON {
		return outputRecordsJSON(cmd, records)
	}
	if searchCards {
		return outputRecordsCards(cmd, records)
	}
	return outputRecordsTable(cmd, records)
}

// recordJSON is the JSON projection of a record, without the raw fields.
type recordJSON struct {
	ID          string
	Title       string
	Citation    string
	Description string
	TimePeriod  string
	Category    string
	Custodian   string
	Keywords    string
	Link        string
}

func outputRecordsJSON(cmd *cobra.Command, records []domain.Record) error {
	out := make([]recordJSON, 0, len(records))
	for _, rec := range records {
		out = append(out, recordJSON{
			ID:          rec.ID,
			Title:       rec.Title,
			Citation:    rec.Citation,
			Description: rec.Description,
			TimePeriod:  rec.TimePeriod,
			Category:    rec.Category,
			Custodian:   rec.Custodian,
			Keywords:    rec.Keywords,
			Link:        rec.Link,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecordsTable(cmd *cobra.Command, records []domain.Record) error {
	if len(records) == 0 {
		cmd.Println("No records match.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCATEGORY\tTIME PERIOD\tCUSTODIAN")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Title, rec.Category, rec.TimePeriod, rec.Custodian)
	}
	return w.Flush()
}

func outputRecordsCards(cmd *cobra.Command, records []domain.Record) error {
	if len(records) == 0 {
		cmd.Println("No records match.")
		return nil
	}

	width := terminalWidth()
	rule := strings.Repeat("-", width)

	for _, rec := range records {
		cmd.Println(rule)
		cmd.Println(truncate(rec.Title, width))
		if rec.Category != "" {
			cmd.Printf("  Category:  %s\n", rec.Category)
		}
		if rec.TimePeriod != "" {
			cmd.Printf("  Period:    %s\n", rec.TimePeriod)
		}
		if rec.Custodian != "" {
			cmd.Printf("  Custodian: %s\n", rec.Custodian)
		}
		if rec.Description != "" {
			cmd.Printf("  %s\n", truncate(rec.Description, width-2))
		}
		if rec.Link != "" {
			cmd.Printf("  %s\n", truncate(rec.Link, width-2))
		}
	}
	cmd.Println(rule)
	cmd.Printf("%d record(s)\n", len(records))
	return nil
}

// terminalWidth returns the stdout width, or 80 when stdout is not a
// terminal (pipes, tests).
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 3 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
