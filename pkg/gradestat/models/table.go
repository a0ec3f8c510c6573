// Package models defines data structures shared by the loader, extractor and report packages.
package models

// Format identifies the kind of file a table was loaded from.
type Format string

const (
	// FormatCSV is a delimited text file.
	FormatCSV Format = "csv"
	// FormatXLSX is an Office Open XML spreadsheet.
	FormatXLSX Format = "xlsx"
)

// ColumnKind is the value type of a column, assigned once at load time.
type ColumnKind int

const (
	// KindEmpty marks a column without any non-empty cell.
	KindEmpty ColumnKind = iota
	// KindNumeric marks a column whose non-empty cells all parse as numbers.
	KindNumeric
	// KindText marks every other column.
	KindText
)

func (k ColumnKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Column describes one positional column of a Table.
type Column struct {
	// Index is the 0-based column position.
	Index int
	// Kind is the inferred value type of the column.
	Kind ColumnKind
}

// Table is a rectangular grid of string cells addressed by position only.
// An empty string is a missing cell.
type Table struct {
	// Source is the base name of the file the table was read from.
	Source string
	// Format is the source format.
	Format Format
	// Columns has one entry per column, in positional order.
	Columns []Column
	// Rows holds the cells; every row has len(Columns) cells.
	Rows [][]string
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Columns)
}

// Cell returns the cell at row r and column c, or "" when out of range.
func (t *Table) Cell(r, c int) string {
	if r < 0 || r >= len(t.Rows) {
		return ""
	}
	row := t.Rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}
