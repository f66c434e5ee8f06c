package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"tabstat/ports"
)

// Reader reads the first sheet of an XLSX workbook into raw tabular form.
type Reader struct{}

// NewReader creates a new Excel reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadTable reads the first sheet. The first row is the header; short
// rows are padded so every data row matches the header width.
func (r *Reader) ReadTable(path string) (*ports.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// excelize trims trailing empty cells per row
		padded := make([]string, len(headers))
		copy(padded, row)
		dataRows = append(dataRows, padded)
	}

	return &ports.RawTable{Headers: headers, Rows: dataRows}, nil
}
