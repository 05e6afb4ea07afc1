package writer

import (
	"context"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"TickerScribe/internal/model"
)

// ExcelWriter writes report tables to a local .xlsx workbook. It is the
// destination for runs without Google credentials (dry runs, local checks).
type ExcelWriter struct {
	path string
	file *excelize.File
}

// NewExcelWriter creates a workbook that will be saved to path on Close.
func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{path: path, file: excelize.NewFile()}
}

func (w *ExcelWriter) Name() string { return "excel" }

func (w *ExcelWriter) UpsertTable(_ context.Context, worksheet string, table *model.IndicatorTable) error {
	values := append([][]interface{}{tableHeader()}, tableRows(table)...)
	return w.writeSheet(worksheet, values)
}

func (w *ExcelWriter) UpsertSummary(_ context.Context, worksheet string, rows []model.Summary) error {
	values := append([][]interface{}{summaryHeader()}, summaryRows(rows)...)
	return w.writeSheet(worksheet, values)
}

func (w *ExcelWriter) writeSheet(worksheet string, values [][]interface{}) error {
	idx, err := w.file.GetSheetIndex(worksheet)
	if err != nil {
		return fmt.Errorf("lookup sheet %q: %w", worksheet, err)
	}
	if idx < 0 {
		if _, err := w.file.NewSheet(worksheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", worksheet, err)
		}
	}
	for i, row := range values {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell address: %w", err)
		}
		if err := w.file.SetSheetRow(worksheet, addr, &row); err != nil {
			return fmt.Errorf("write row %d of %q: %w", i+1, worksheet, err)
		}
	}
	return nil
}

// Close drops the default empty sheet and saves the workbook to disk.
func (w *ExcelWriter) Close() error {
	if sheets := w.file.GetSheetList(); len(sheets) > 1 {
		for _, name := range sheets {
			if name == "Sheet1" {
				if err := w.file.DeleteSheet(name); err != nil {
					log.Printf("[WARN] drop default sheet: %v", err)
				}
				break
			}
		}
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", w.path, err)
	}
	log.Printf("[INFO] workbook saved: %s", w.path)
	return nil
}
