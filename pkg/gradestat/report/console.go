package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// PrintSummaries writes the grade counts of every summary as a table.
func PrintSummaries(w io.Writer, summaries []models.GradeSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Grade", "Count", "Share"})
	table.SetRowLine(true)

	for _, s := range summaries {
		for _, gc := range s.Counts {
			table.Append([]string{
				s.Source,
				gc.Grade,
				strconv.Itoa(gc.Count),
				percent(gc.Count, s.Total),
			})
		}
		table.Append([]string{s.Source, "Total", strconv.Itoa(s.Total), percent(s.Total, s.Total)})
		if s.Ungraded > 0 {
			table.Append([]string{s.Source, "Not graded", strconv.Itoa(s.Ungraded), ""})
		}
	}

	table.Render()
}
