package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
)

var (
	exportQuery    string
	exportCategory string
	exportPeriod   string
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export filtered records to an Excel workbook",
	Long: `Exports the records matching the given filters to an .xlsx workbook.
With no filters the whole catalogue is exported. With no path a unique
file name is generated in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportQuery, "query", "", "free-text query filter")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "exact data category filter")
	exportCmd.Flags().StringVar(&exportPeriod, "period", "", "exact time period filter")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	state := domain.FilterState{
		Query:      exportQuery,
		Category:   exportCategory,
		TimePeriod: exportPeriod,
	}
	records := queryService.Filter(state)

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	written, err := exporterService.Export(cmd.Context(), records, path)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d record(s) to %s\n", len(records), written)
	return nil
}
