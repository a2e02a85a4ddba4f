package export

import (
	"encoding/json"
	"io"

	"github.com/mertowave/nld-vehicle-data-portal/lib/rdw"
)

// Preview pretty-prints up to a fixed number of records to a stream. A
// limit of zero disables it entirely.
type Preview struct {
	encoder *json.Encoder
	limit   int
	printed int
}

func NewPreview(w io.Writer, limit int) *Preview {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	// keep non-ASCII characters readable
	encoder.SetEscapeHTML(false)
	return &Preview{encoder: encoder, limit: limit}
}

// Write prints the record if the preview quota isn't used up yet.
func (p *Preview) Write(record rdw.Record) error {
	if p.limit <= 0 || p.printed >= p.limit {
		return nil
	}
	if err := p.encoder.Encode(record); err != nil {
		return err
	}
	p.printed++
	return nil
}

// Printed reports how many records were actually rendered.
func (p *Preview) Printed() int {
	return p.printed
}
