package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	csvData := ` "region" ,sales,notes
north,10,first
south,2.5,
east,7,"quoted, text"
west,,last
`
	table, err := ReadTable(strings.NewReader(csvData), 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"region", "sales", "notes"}, table.Columns)
	assert.Equal(t, []string{"sales"}, table.NumericColumns)
	assert.Equal(t, 4, table.RowCount)
	assert.Equal(t, [][]string{
		{"north", "10", "first"},
		{"south", "2.5", ""},
	}, table.Rows)
}

func TestReadTableRaggedRows(t *testing.T) {
	table, err := ReadTable(strings.NewReader("a,b,c\n1,2\n3,4,5,6\n"), 0)
	require.NoError(t, err)

	assert.Equal(t, 2, table.RowCount)
	assert.Equal(t, [][]string{{"1", "2", ""}, {"3", "4", "5"}}, table.Rows)
	assert.Equal(t, []string{"a", "b", "c"}, table.NumericColumns)
}

func TestReadTableHeaderOnly(t *testing.T) {
	table, err := ReadTable(strings.NewReader("a,b\n"), 5)
	require.NoError(t, err)

	assert.Equal(t, 0, table.RowCount)
	assert.Empty(t, table.Rows)
	// a column with no values is not offered as numeric
	assert.Empty(t, table.NumericColumns)
}

func TestReadTableEmpty(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), 5)
	assert.Error(t, err)
}
