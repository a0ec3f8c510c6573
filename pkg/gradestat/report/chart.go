// Package report renders grade summaries as pie charts, text pages and PDF reports.
package report

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// ErrEmptySummary indicates a summary without any graded student.
var ErrEmptySummary = errors.New("no grades to chart")

// palette holds the slice colours, reused in order when there are more grades.
var palette = []string{"14A44D", "91CC75", "6080E0", "FFC107", "FD9552", "EE4C4C"}

const chartSize = 800

// SliceColor returns the colour of the i-th slice.
func SliceColor(i int) drawing.Color {
	return drawing.ColorFromHex(palette[i%len(palette)])
}

// PieChart renders the grade distribution of summary as a PNG image.
// Every slice is labelled with its grade and percentage.
func PieChart(summary models.GradeSummary) ([]byte, error) {
	if summary.Total <= 0 {
		return nil, ErrEmptySummary
	}

	pie := chart.PieChart{
		Width:  chartSize,
		Height: chartSize,
		Values: chartValues(summary),
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

func chartValues(summary models.GradeSummary) []chart.Value {
	values := make([]chart.Value, 0, len(summary.Counts))
	for i, gc := range summary.Counts {
		values = append(values, chart.Value{
			Value: float64(gc.Count),
			Label: fmt.Sprintf("%s %s", gc.Grade, percent(gc.Count, summary.Total)),
			Style: chart.Style{
				FillColor:   SliceColor(i),
				StrokeColor: drawing.ColorWhite,
				FontSize:    14,
			},
		})
	}
	return values
}

// percent formats count/total with two decimals.
func percent(count, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(count)*100/float64(total))
}
