package cli

import (
	"github.com/coastline-labs/shoal-cli/internal/adapters/driven/export/excel"
	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/core/services"
)

// testCollection is a small catalogue exercising every field the commands
// render.
func testCollection() domain.RawCollection {
	return domain.RawCollection{
		{
			Title: "Ocean Survey",
			Record: domain.RawRecord{
				{Name: "Data Category", Value: "Marine"},
				{Name: "Time Period of Content", Value: "2001-2004"},
				{Name: "Data Custodian", Value: "CSIRO"},
				{Name: "Description", Value: "Seafloor bathymetry for the shelf"},
				{Name: "Citation", Value: "Smith 2004"},
				{Name: "Keywords (Theme)", Value: "bathymetry, sonar"},
				{Name: "External Metadata Reference", Value: "http://meta.example.org/1"},
			},
		},
		{
			Title: "Rainfall Stations",
			Record: domain.RawRecord{
				{Name: "Data Category", Value: "Climate"},
				{Name: "Time Period of Content", Value: "1990-2020"},
				{Name: "Data Custodian", Value: "BoM"},
			},
		},
		{
			Title: "Harbour Sediment",
			Record: domain.RawRecord{
				{Name: "Data Category", Value: "Marine"},
				{Name: "Description", Value: "Grain size analysis"},
			},
		},
	}
}

// setupTestServices injects real services over the test collection and
// returns a cleanup func restoring the previous wiring.
func setupTestServices() func() {
	cat := services.NewCatalogueService(nil)
	cat.Build(testCollection())

	oldCat := catalogueService
	oldQuery := queryService
	oldExp := exporterService

	SetServices(cat, services.NewQueryService(cat), excel.New())

	return func() {
		catalogueService = oldCat
		queryService = oldQuery
		exporterService = oldExp
	}
}
