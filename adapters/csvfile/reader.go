package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"tabstat/ports"
)

// Reader reads CSV files with a header row into raw tabular form.
type Reader struct{}

// NewReader creates a new CSV reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadTable reads the whole file at once. The first row is the header;
// ragged rows are rejected by the underlying CSV parser.
func (r *Reader) ReadTable(path string) (*ports.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
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

	return &ports.RawTable{Headers: headers, Rows: rows[1:]}, nil
}
