package gradestat

import (
	"github.com/ukaji3/gradestat-go/pkg/gradestat/extractor"
	"github.com/ukaji3/gradestat-go/pkg/gradestat/loader"
	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// Analyze loads one result file, extracts its (reg_no, letter_grade)
// relation and tallies the grades.
func Analyze(path string, opts Options) (*models.Result, models.GradeSummary, error) {
	table, err := loader.Load(path, opts.loaderOptions())
	if err != nil {
		return nil, models.GradeSummary{}, NewFileError(path, "load", err)
	}

	result, err := extractor.Extract(table)
	if err != nil {
		return nil, models.GradeSummary{}, NewFileError(path, "extract", err)
	}

	return result, extractor.Tally(result), nil
}
