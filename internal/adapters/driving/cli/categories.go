package cli

import (
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct data categories",
	Long:  `Prints every distinct data category in the catalogue, one per line, sorted.`,
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "List the distinct time periods",
	Long:  `Prints every distinct time period in the catalogue, one per line, sorted.`,
	Args:  cobra.NoArgs,
	RunE:  runPeriods,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(periodsCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	for _, c := range catalogueService.Categories() {
		cmd.Println(c)
	}
	return nil
}

func runPeriods(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	for _, p := range catalogueService.TimePeriods() {
		cmd.Println(p)
	}
	return nil
}
