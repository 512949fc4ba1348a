package pipeline

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"go-etl-designer/internal/model"
	"go-etl-designer/pkg/utils"
)

// DefaultPreviewRows is how many rows a preview keeps when the caller does not say
const DefaultPreviewRows = 5

// ------------------- CSV Upload -------------------

// ReadTable parses an uploaded delimited text file: a header row followed by rows.
// Only the first previewRows rows are kept; all rows are counted and inspected
// to find the numeric columns.
func ReadTable(r io.Reader, previewRows int) (*model.Table, error) {
	if previewRows <= 0 {
		previewRows = DefaultPreviewRows
	}

	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, errors.New("empty CSV: no header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	table := &model.Table{
		Columns: make([]string, len(headers)),
		Rows:    make([][]string, 0, previewRows),
	}
	for i, h := range headers {
		// Clean header names: trim whitespace and remove ALL quotes
		cleanHeader := strings.TrimSpace(h)
		cleanHeader = strings.ReplaceAll(cleanHeader, `"`, "")
		table.Columns[i] = cleanHeader
	}

	// numeric[i] stays true while every non-empty cell of column i parses as a number
	numeric := make([]bool, len(headers))
	seen := make([]bool, len(headers))
	for i := range numeric {
		numeric[i] = true
	}

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "CSV read error at row %d", table.RowCount+1)
		}

		for i := range headers {
			if i >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[i])
			if cell == "" {
				continue
			}
			seen[i] = true
			if numeric[i] && !utils.IsNumeric(utils.ParseValue(cell)) {
				numeric[i] = false
			}
		}

		if len(table.Rows) < previewRows {
			table.Rows = append(table.Rows, padRow(record, len(headers)))
		}
		table.RowCount++
	}

	table.NumericColumns = make([]string, 0)
	for i, col := range table.Columns {
		if numeric[i] && seen[i] {
			table.NumericColumns = append(table.NumericColumns, col)
		}
	}

	return table, nil
}

// padRow fits a ragged record to the header width
func padRow(record []string, width int) []string {
	row := make([]string, width)
	copy(row, record)
	return row
}
