package report

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// gradeShare is one grade of a summary with its share of the graded students.
type gradeShare struct {
	models.GradeCount
	Share float64 `json:"share"`
}

type summaryJSON struct {
	Source   string       `json:"source"`
	Grades   []gradeShare `json:"grades"`
	Total    int          `json:"total"`
	Ungraded int          `json:"ungraded,omitempty"`
}

// WriteJSON writes summaries as a JSON array.
func WriteJSON(w io.Writer, summaries []models.GradeSummary, pretty bool) error {
	out := make([]summaryJSON, 0, len(summaries))
	for _, s := range summaries {
		grades := make([]gradeShare, 0, len(s.Counts))
		for _, gc := range s.Counts {
			grades = append(grades, gradeShare{GradeCount: gc, Share: s.Share(gc.Grade)})
		}
		out = append(out, summaryJSON{
			Source:   s.Source,
			Grades:   grades,
			Total:    s.Total,
			Ungraded: s.Ungraded,
		})
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
