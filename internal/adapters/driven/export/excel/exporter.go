// Package excel writes filtered catalogue records to an xlsx workbook.
package excel

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/coastline-labs/shoal-cli/internal/core/domain"
	"github.com/coastline-labs/shoal-cli/internal/core/ports/driven"
	"github.com/coastline-labs/shoal-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driven.Exporter = (*Exporter)(nil)

const sheetName = "Records"

// columns is the export column order, one cell per normalised field.
var columns = []struct {
	header string
	value  func(domain.Record) string
}{
	{"Title", func(r domain.Record) string { return r.Title }},
	{"Data Category", func(r domain.Record) string { return r.Category }},
	{"Time Period", func(r domain.Record) string { return r.TimePeriod }},
	{"Data Custodian", func(r domain.Record) string { return r.Custodian }},
	{"Keywords", func(r domain.Record) string { return r.Keywords }},
	{"Citation", func(r domain.Record) string { return r.Citation }},
	{"Description", func(r domain.Record) string { return r.Description }},
	{"Link", func(r domain.Record) string { return r.Link }},
}

// Exporter writes records to an xlsx workbook on disk.
type Exporter struct{}

// New creates a new xlsx exporter.
func New() *Exporter {
	return &Exporter{}
}

// Export writes the records to path. When path is empty a unique default
// name is generated in the working directory. Returns the path written.
func (e *Exporter) Export(ctx context.Context, records []domain.Record, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if path == "" {
		path = defaultName()
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	for col, c := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, c.header); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}

	for row, rec := range records {
		for col, c := range columns {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("record cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, c.value(rec)); err != nil {
				return "", fmt.Errorf("write record %q: %w", rec.Title, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}

	logger.Info("Exported %d records to %s", len(records), path)
	return path, nil
}

// defaultName generates a unique workbook name for unnamed exports.
func defaultName() string {
	return fmt.Sprintf("shoal-export-%s.xlsx", uuid.New().String()[:8])
}
