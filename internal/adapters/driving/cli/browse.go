package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driven/watch"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driving/tui/messages"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/logger"
)

var (
	browseTable bool
	browseWatch bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalogue interactively",
	Long: `Launch the interactive terminal UI for browsing the catalogue.

Records update live as you type a query or change the category and time
period filters.

Controls:
  tab      - Cycle focus between query, filters and results
  ↑/k ↓/j  - Move through results
  ←/h →/l  - Cycle the focused filter
  v        - Toggle cards/table layout
  ?        - Toggle help
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseTable, "table", false, "start in table layout")
	browseCmd.Flags().BoolVar(&browseWatch, "watch", false, "reload when the catalogue file changes")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := ensureServices(cmd); err != nil {
		return err
	}

	ports := &tui.Ports{
		Catalogue: catalogueService,
		Query:     queryService,
	}

	mode := domain.ViewCards
	if appConfig != nil && appConfig.View == domain.ViewTable.String() {
		mode = domain.ViewTable
	}
	if browseTable {
		mode = domain.ViewTable
	}

	app, err := tui.NewApp(ports, mode)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Watch reloads only work when the services were wired from a file
	// source; injected services have nothing to reload from.
	watchEnabled := browseWatch || (appConfig != nil && appConfig.Watch)
	if watchEnabled && catalogueBuilder != nil && catalogueSource != nil {
		w := watch.New(catalogueSource.Path(), func() {
			raw, err := catalogueSource.Load(context.Background())
			if err != nil {
				logger.Warn("Catalogue reload failed: %v", err)
				p.Send(messages.ErrorOccurred{Err: err})
				return
			}
			catalogueBuilder.Build(raw)
			p.Send(messages.CatalogueReloaded{Records: catalogueBuilder.Len()})
		})
		if err := w.Start(cmd.Context()); err != nil {
			logger.Warn("Watch disabled: %v", err)
		} else {
			defer w.Stop() //nolint:errcheck // best-effort shutdown
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
