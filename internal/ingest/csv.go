package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVDecoder reads comma-separated exports. Quoting is honoured when present
// but malformed quotes are tolerated.
type CSVDecoder struct{}

func (CSVDecoder) Rows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read CSV: %w", err)
	}
	return rows, nil
}
