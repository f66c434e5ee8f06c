package ports

// RawTable is the parsed but still untyped content of one tabular file:
// a header row plus string-valued data rows.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// TableReader reads a tabular file into raw header + string rows.
// Adapters exist for CSV and XLSX sources; the processor picks one
// by file extension.
type TableReader interface {
	ReadTable(path string) (*RawTable, error)
}
