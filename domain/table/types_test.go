package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetAccessors(t *testing.T) {
	ds := &Dataset{
		Columns: []Column{
			{Name: "age", Kind: ColumnNumeric, Values: []float64{30, 41}},
			{Name: "city", Kind: ColumnText, Text: []string{"Oslo", "Lima"}},
			{Name: "score", Kind: ColumnNumeric, Values: []float64{0.5, 0.7}},
		},
		RowCount: 2,
	}

	assert.Equal(t, []string{"age", "city", "score"}, ds.ColumnNames())

	numeric := ds.NumericColumns()
	require.Len(t, numeric, 2)
	assert.Equal(t, "age", numeric[0].Name)
	assert.Equal(t, "score", numeric[1].Name)

	col, ok := ds.Column("city")
	require.True(t, ok)
	assert.Equal(t, ColumnText, col.Kind)

	_, ok = ds.Column("missing")
	assert.False(t, ok)
}

func TestStatisticsReportLookup(t *testing.T) {
	report := &StatisticsReport{Entries: []ColumnStats{
		{Column: "age", Mean: 35.5, Median: 35.5, Modes: []float64{30, 41}},
	}}

	assert.Equal(t, 1, report.Len())

	entry, ok := report.Column("age")
	require.True(t, ok)
	assert.Equal(t, 35.5, entry.Mean)

	_, ok = report.Column("score")
	assert.False(t, ok)
}
