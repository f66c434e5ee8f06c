package table

import "tabstat/domain/core"

// ColumnKind tags the type inferred for a column at load time
type ColumnKind string

const (
	ColumnNumeric ColumnKind = "numeric"
	ColumnText    ColumnKind = "text"
)

// Column holds one named column of a single inferred kind. The kind is
// decided once when the dataset is built and never re-inspected.
type Column struct {
	Name    string     `json:"name"`
	Kind    ColumnKind `json:"kind"`
	Values  []float64  `json:"values,omitempty"` // numeric cells, missing cells dropped
	Text    []string   `json:"text,omitempty"`   // non-empty cells of a text column
	Missing int        `json:"missing"`          // count of empty cells in the source
}

// Dataset is the in-memory tabular structure loaded from one file.
// It is replaced wholesale on every load.
type Dataset struct {
	ID         core.ID  `json:"id"`
	SourcePath string   `json:"source_path"`
	Columns    []Column `json:"columns"`
	RowCount   int      `json:"row_count"`
}

// NumericColumns returns the numeric columns in dataset order.
func (d *Dataset) NumericColumns() []Column {
	var cols []Column
	for _, col := range d.Columns {
		if col.Kind == ColumnNumeric {
			cols = append(cols, col)
		}
	}
	return cols
}

// Column returns the named column, if present.
func (d *Dataset) Column(name string) (Column, bool) {
	for _, col := range d.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// ColumnNames returns all column names in dataset order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// ColumnStats holds the descriptive statistics of one numeric column.
// Modes lists every value tied for the highest frequency, ascending.
type ColumnStats struct {
	Column string    `json:"column"`
	Mean   float64   `json:"mean"`
	Median float64   `json:"median"`
	Modes  []float64 `json:"mode"`
}

// StatisticsReport maps numeric columns to their statistics. Entries keep
// dataset column order so exports are stable across runs.
type StatisticsReport struct {
	Entries []ColumnStats `json:"entries"`
}

// Column returns the statistics for the named column, if present.
func (r *StatisticsReport) Column(name string) (ColumnStats, bool) {
	for _, entry := range r.Entries {
		if entry.Column == name {
			return entry, true
		}
	}
	return ColumnStats{}, false
}

// Len returns the number of columns in the report.
func (r *StatisticsReport) Len() int {
	return len(r.Entries)
}
