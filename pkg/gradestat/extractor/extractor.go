// Package extractor finds the registration number and grade columns of a
// result table and projects it to (reg_no, letter_grade) records.
package extractor

import (
	"errors"
	"log/slog"
	"regexp"
	"sort"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// ErrNoRegistrationColumn indicates no cell of the table looks like a registration number.
var ErrNoRegistrationColumn = errors.New("no registration numbers detected in input file")

// ErrNoGradeColumn indicates no column right of the registration numbers holds enough valid grades.
var ErrNoGradeColumn = errors.New("could not detect the grade column")

// GradeThreshold is the minimum fraction of valid grades a column needs,
// over the matched rows, to be taken as the grade column.
const GradeThreshold = 0.75

// regNoPattern matches four digits, a slash and six digits at the start of a cell.
var regNoPattern = regexp.MustCompile(`^[0-9]{4}/[0-9]{6}`)

// MatchesRegNo reports whether s starts with a registration number.
func MatchesRegNo(s string) bool {
	return regNoPattern.MatchString(s)
}

// Extract detects the registration and grade columns of table and returns
// the normalized result relation.
//
// The registration column is the first column with at least one matching
// cell. The grade column is the last text column to its right whose valid
// grade share over the matched rows reaches GradeThreshold.
func Extract(table *models.Table) (*models.Result, error) {
	regCol, working := findRegColumn(table)
	if regCol < 0 {
		return nil, ErrNoRegistrationColumn
	}

	gradeCol := findGradeColumn(table, regCol, working)
	if gradeCol < 0 {
		return nil, ErrNoGradeColumn
	}

	result := &models.Result{
		Source:      table.Source,
		RegColumn:   regCol,
		GradeColumn: gradeCol,
		Records:     make([]models.Record, 0, len(working)),
	}
	for _, r := range working {
		grade := NormalizeGrade(table.Cell(r, gradeCol))
		if !IsValidGrade(grade) {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, models.Record{
			RegNo:       table.Cell(r, regCol),
			LetterGrade: grade,
		})
	}

	slog.Debug("extracted results",
		slog.String("source", table.Source),
		slog.Int("reg_column", regCol),
		slog.Int("grade_column", gradeCol),
		slog.Int("records", len(result.Records)),
		slog.Int("dropped", result.Dropped))

	return result, nil
}

// findRegColumn returns the first column holding a registration number and
// the indexes of the rows that match in it, or -1 when there is none.
func findRegColumn(table *models.Table) (int, []int) {
	for _, col := range table.Columns {
		var rows []int
		for r := range table.Rows {
			if MatchesRegNo(table.Cell(r, col.Index)) {
				rows = append(rows, r)
			}
		}
		if len(rows) > 0 {
			return col.Index, rows
		}
	}
	return -1, nil
}

// findGradeColumn returns the grade column for the working rows, or -1.
// Every candidate is scanned and the last one over the threshold wins.
func findGradeColumn(table *models.Table, regCol int, working []int) int {
	gradeCol := -1
	for _, col := range table.Columns {
		if col.Index <= regCol || col.Kind != models.KindText {
			continue
		}
		if share := validShare(table, col.Index, working); share >= GradeThreshold {
			gradeCol = col.Index
		}
	}
	return gradeCol
}

// validShare is the fraction of working rows whose cell in col is a valid grade.
// Missing cells count as invalid.
func validShare(table *models.Table, col int, working []int) float64 {
	if len(working) == 0 {
		return 0
	}
	valid := 0
	for _, r := range working {
		if IsValidGrade(NormalizeGrade(table.Cell(r, col))) {
			valid++
		}
	}
	return float64(valid) / float64(len(working))
}

// Tally counts the grades of result, sorted by grade.
func Tally(result *models.Result) models.GradeSummary {
	counts := make(map[string]int)
	for _, rec := range result.Records {
		counts[rec.LetterGrade]++
	}

	summary := models.GradeSummary{
		Source:   result.Source,
		Counts:   make([]models.GradeCount, 0, len(counts)),
		Total:    len(result.Records),
		Ungraded: result.Dropped,
	}
	for grade, n := range counts {
		summary.Counts = append(summary.Counts, models.GradeCount{Grade: grade, Count: n})
	}
	sort.Slice(summary.Counts, func(i, j int) bool {
		return summary.Counts[i].Grade < summary.Counts[j].Grade
	})
	return summary
}
