package report

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

var divider = strings.Repeat("-", 80)

// SummaryLines returns the text page of summary: the source file, one
// line per grade in ascending order, the total and, when some matched
// rows had no valid grade, how many were left out.
func SummaryLines(summary models.GradeSummary) []string {
	lines := []string{
		"Source file: " + summary.Source,
		divider,
	}
	for _, gc := range summary.Counts {
		lines = append(lines, fmt.Sprintf("    %-2s:  %d", gc.Grade, gc.Count))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Total: %d", summary.Total),
	)
	if summary.Ungraded > 0 {
		lines = append(lines, fmt.Sprintf("Not graded: %d", summary.Ungraded))
	}
	return append(lines, divider)
}
