package loader

import (
	"strconv"
	"strings"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// normalize turns ragged reader output into a rectangular Table and tags
// every column with its kind.
func normalize(raw [][]string) *models.Table {
	lastRow, width := dataBounds(raw)

	rows := make([][]string, 0, lastRow+1)
	for rowIdx := 0; rowIdx <= lastRow; rowIdx++ {
		row := make([]string, width)
		copy(row, raw[rowIdx])
		rows = append(rows, row)
	}

	columns := make([]models.Column, width)
	for colIdx := range columns {
		columns[colIdx] = models.Column{
			Index: colIdx,
			Kind:  columnKind(rows, colIdx),
		}
	}

	return &models.Table{
		Columns: columns,
		Rows:    rows,
	}
}

// dataBounds returns the index of the last row holding a non-blank cell
// and the table width, one past the right-most non-blank cell.
// lastRow is -1 for a table without data.
func dataBounds(rows [][]string) (lastRow, width int) {
	lastRow = -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isBlank(cell) {
				continue
			}
			lastRow = rowIdx
			if colIdx+1 > width {
				width = colIdx + 1
			}
		}
	}
	return
}

// columnKind infers the value type of column colIdx.
func columnKind(rows [][]string, colIdx int) models.ColumnKind {
	kind := models.KindEmpty
	for _, row := range rows {
		cell := row[colIdx]
		if isBlank(cell) {
			continue
		}
		if !isNumber(cell) {
			return models.KindText
		}
		kind = models.KindNumeric
	}
	return kind
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isNumber reports whether s parses as an integer or a decimal.
func isNumber(s string) bool {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
