// Package cli implements the shoal command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coastline-labs/shoal-cli/internal/adapters/driven/config/file"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driven/export/excel"
	"github.com/coastline-labs/shoal-cli/internal/adapters/driven/source/yamlfile"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driven"
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driving"
	"github.com/coastline-labs/shoal-cli/internal/core/services"
	"github.com/coastline-labs/shoal-cli/internal/logger"
)

// version is set by Execute.
var version = "dev"

var (
	verbose       bool
	cataloguePath string
)

// Services used by the commands. Wired lazily by ensureServices, or
// injected with SetServices.
var (
	catalogueService driving.CatalogueService
	queryService     driving.QueryService
	exporterService  driven.Exporter

	// catalogueBuilder and catalogueSource are retained for file watch
	// reloads; both are nil when services were injected.
	catalogueBuilder *services.CatalogueService
	catalogueSource  driven.CatalogueSource

	appConfig *file.Config
)

var rootCmd = &cobra.Command{
	Use:   "shoal",
	Short: "Browse and search a metadata catalogue",
	Long: `Shoal normalises a YAML metadata catalogue into a uniform record
collection and lets you search, filter, browse and export it.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cataloguePath, "catalogue", "", "path to the catalogue YAML file (overrides config)")
}

// SetServices injects pre-built services, bypassing config and catalogue
// loading. Used by tests and by callers wiring their own adapters.
func SetServices(catalogue driving.CatalogueService, query driving.QueryService, exporter driven.Exporter) {
	catalogueService = catalogue
	queryService = query
	exporterService = exporter
	catalogueBuilder = nil
	catalogueSource = nil
}

// ensureServices wires the service graph from configuration on first use.
// Commands that do not touch the catalogue never pay for a load.
func ensureServices(cmd *cobra.Command) error {
	if catalogueService != nil && queryService != nil {
		return nil
	}

	store, err := file.NewStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	appConfig = cfg

	path := cataloguePath
	if path == "" {
		path = cfg.Catalogue
	}
	if path == "" {
		return fmt.Errorf("%w: pass --catalogue or set catalogue in %s", domain.ErrNoCatalogue, store.Path())
	}

	src := yamlfile.New(path)
	raw, err := src.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}

	cat := services.NewCatalogueService(nil)
	cat.Build(raw)

	catalogueBuilder = cat
	catalogueSource = src
	catalogueService = cat
	queryService = services.NewQueryService(cat)
	if exporterService == nil {
		exporterService = excel.New()
	}
	return nil
}

// Execute runs the root command with the given version string.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
