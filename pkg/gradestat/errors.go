package gradestat

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/extractor"
	"github.com/ukaji3/gradestat-go/pkg/gradestat/loader"
)

// ErrUnsupportedFormat indicates the input is neither a .csv nor a .xlsx file.
var ErrUnsupportedFormat = loader.ErrUnsupportedFormat

// ErrNoRegistrationColumn indicates no cell looks like a registration number.
var ErrNoRegistrationColumn = extractor.ErrNoRegistrationColumn

// ErrNoGradeColumn indicates no column holds enough valid letter grades.
var ErrNoGradeColumn = extractor.ErrNoGradeColumn

// ErrNothingProcessed indicates every file of a batch failed.
var ErrNothingProcessed = errors.New("no input file could be processed")

// FileError represents a failure while processing one input file.
type FileError struct {
	Path  string
	Stage string // "load", "extract", "report"
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s (%s): %v", filepath.Base(e.Path), e.Stage, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(path, stage string, err error) *FileError {
	return &FileError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
