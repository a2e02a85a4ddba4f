package export

import (
	"encoding/csv"
	"io"

	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"
)

// CSVWriter streams translated records as CSV rows. The header always
// carries the full canonical field vocabulary so rows can be written as
// they arrive without knowing which fields the dataset will populate.
type CSVWriter struct {
	w      *csv.Writer
	fields []string
}

// NewCSVWriter writes the header row immediately and returns a writer
// ready for incremental row emission.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{
		w:      csv.NewWriter(w),
		fields: rdw.CSVFieldNames,
	}
	if err := cw.w.Write(cw.fields); err != nil {
		return nil, err
	}
	cw.w.Flush()
	return cw, cw.w.Error()
}

// Write emits one row. Canonical fields absent from the record render as
// empty strings.
func (cw *CSVWriter) Write(record rdw.Record) error {
	row := make([]string, len(cw.fields))
	for i, field := range cw.fields {
		if value, ok := record[field]; ok && value != nil {
			row[i] = formatCell(value)
		}
	}
	return cw.w.Write(row)
}

// Flush pushes buffered rows to the underlying writer. Callers streaming
// over HTTP flush per row; file writers flush once at the end.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
