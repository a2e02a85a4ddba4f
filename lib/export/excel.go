package export

import (
	"encoding/json"
	"fmt"

	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"

	"github.com/xuri/excelize/v2"
)

// MaxExcelRows is the xlsx format's hard row ceiling per sheet.
const MaxExcelRows = 1_048_576

// CapacityError means the dataset is too large for the spreadsheet format.
// Callers should fall back to CSV.
type CapacityError struct {
	Rows int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("export: spreadsheet cannot store %d rows, use CSV or filter the dataset", e.Rows)
}

// WriteExcel materializes the records into a single-sheet workbook at
// path. The capacity check runs before any file is created, so a failed
// export leaves nothing behind.
func WriteExcel(records []rdw.Record, path string) error {
	if len(records) > MaxExcelRows {
		return &CapacityError{Rows: len(records)}
	}

	file := excelize.NewFile()
	defer file.Close()
	sheet := file.GetSheetName(0)

	header := make([]any, len(rdw.CSVFieldNames))
	for i, field := range rdw.CSVFieldNames {
		header[i] = field
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for i, record := range records {
		row := make([]any, len(rdw.CSVFieldNames))
		for j, field := range rdw.CSVFieldNames {
			if value, ok := record[field]; ok && value != nil {
				row[j] = excelCell(value)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: row address: %w", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("export: write row %d: %w", i+1, err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// excelCell keeps numbers numeric in the sheet instead of flattening
// everything to text.
func excelCell(value any) any {
	if n, ok := value.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	}
	return value
}

func formatCell(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
