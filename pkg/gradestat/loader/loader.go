// Package loader reads result files into positional string tables.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// ErrUnsupportedFormat indicates the file extension is neither .csv nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format: only .csv and .xlsx files are allowed")

// Options configures how files are read.
type Options struct {
	// Delimiter is the CSV field separator. If 0, it is sniffed among ',', ';' and '\t'.
	Delimiter rune
}

// FormatOf maps a file name to its source format by extension.
func FormatOf(path string) (models.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return models.FormatCSV, nil
	case ".xlsx":
		return models.FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// Load reads path into a Table. Both formats yield the same shape:
// no header row, columns indexed 0..N-1, every row padded to N cells.
func Load(path string, opts Options) (*models.Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch format {
	case models.FormatCSV:
		rows, err = readCSV(path, opts.Delimiter)
	case models.FormatXLSX:
		rows, err = readXLSX(path)
	}
	if err != nil {
		return nil, err
	}

	table := normalize(rows)
	table.Source = filepath.Base(path)
	table.Format = format
	return table, nil
}

// FromRows builds a Table from rows already in memory, applying the same
// normalization as Load.
func FromRows(source string, rows [][]string) *models.Table {
	table := normalize(rows)
	table.Source = source
	return table
}
