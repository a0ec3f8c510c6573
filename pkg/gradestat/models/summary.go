package models

// GradeCount is the number of students holding one grade.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// GradeSummary is the grade distribution of one input file.
// Counts is sorted by grade and sums to Total.
type GradeSummary struct {
	// Source is the base name of the input file.
	Source string
	// Counts holds one entry per grade present.
	Counts []GradeCount
	// Total is the number of graded students.
	Total int
	// Ungraded counts students whose grade cell held no valid grade.
	Ungraded int
}

// Share returns the fraction of graded students holding grade, or 0 for an empty summary.
func (s GradeSummary) Share(grade string) float64 {
	if s.Total == 0 {
		return 0
	}
	for _, gc := range s.Counts {
		if gc.Grade == grade {
			return float64(gc.Count) / float64(s.Total)
		}
	}
	return 0
}
