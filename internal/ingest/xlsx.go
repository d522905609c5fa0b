package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXDecoder reads the first worksheet of an Excel workbook.
type XLSXDecoder struct{}

func (XLSXDecoder) Rows(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("unable to read worksheet %q: %w", sheetName, err)
	}
	return rows, nil
}
