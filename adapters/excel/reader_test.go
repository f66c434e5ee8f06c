package excel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadTable(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"A", "B"},
		[]interface{}{1, "x"},
		[]interface{}{2, "y"},
	)

	raw, err := NewReader().ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, raw.Headers)
	require.Len(t, raw.Rows, 2)
	assert.Equal(t, []string{"1", "x"}, raw.Rows[0])
	assert.Equal(t, []string{"2", "y"}, raw.Rows[1])
}

func TestReadTableShortRowsArePadded(t *testing.T) {
	path := writeWorkbook(t,
		[]interface{}{"A", "B"},
		[]interface{}{1},
	)

	raw, err := NewReader().ReadTable(path)
	require.NoError(t, err)
	require.Len(t, raw.Rows, 1)
	assert.Equal(t, []string{"1", ""}, raw.Rows[0])
}

func TestReadTableHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, []interface{}{"A", "B"})

	_, err := NewReader().ReadTable(path)
	assert.Error(t, err)
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := NewReader().ReadTable(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
