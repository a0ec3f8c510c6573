package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
)

// ErrEmptyReport indicates WriteFile was called before any file was added.
var ErrEmptyReport = errors.New("report has no pages")

// A4 landscape, in millimetres.
const (
	pageWidth  = 297.0
	pageHeight = 210.0
	margin     = 15.0
	chartWidth = 165.0
)

// Writer accumulates two pages per input file and writes them as one PDF.
// Nothing touches the disk until WriteFile.
type Writer struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	files int
}

// NewWriter creates an empty report.
func NewWriter() *Writer {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Result analytics", true)
	pdf.SetCreator("gradestat", true)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetMargins(margin, margin, margin)

	return &Writer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// AddFile appends the chart page and the text page of summary.
func (w *Writer) AddFile(summary models.GradeSummary) error {
	png, err := PieChart(summary)
	if err != nil {
		return fmt.Errorf("%s: %w", summary.Source, err)
	}

	w.files++
	w.chartPage(summary, png)
	w.textPage(summary)

	if err := w.pdf.Error(); err != nil {
		return fmt.Errorf("%s: %w", summary.Source, err)
	}
	return nil
}

// Files returns the number of summaries added.
func (w *Writer) Files() int {
	return w.files
}

// Pages returns the number of pages added so far.
func (w *Writer) Pages() int {
	return w.pdf.PageCount()
}

// WriteFile writes the report to path. The PDF goes to a temporary file in
// the same directory first and is renamed into place once complete.
func (w *Writer) WriteFile(path string) error {
	if w.files == 0 {
		return ErrEmptyReport
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".gradestat-*.pdf")
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := w.pdf.Output(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// chartPage draws the title, the pie chart and its legend.
func (w *Writer) chartPage(summary models.GradeSummary, png []byte) {
	pdf := w.pdf
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageWidth-2*margin, 10, w.tr(stem(summary.Source)), "", 1, "C", false, 0, "")

	name := fmt.Sprintf("chart-%d", w.files)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, (pageWidth-chartWidth)/2, margin+14, chartWidth, 0, false, opts, 0, "")

	// Legend, upper left.
	pdf.SetFont("Helvetica", "", 12)
	y := margin + 20
	for i, gc := range summary.Counts {
		c := SliceColor(i)
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.Rect(margin, y, 6, 6, "F")
		pdf.SetXY(margin+8, y)
		pdf.CellFormat(40, 6, gc.Grade, "", 0, "L", false, 0, "")
		y += 9
	}
}

// textPage writes the summary lines.
func (w *Writer) textPage(summary models.GradeSummary) {
	pdf := w.pdf
	pdf.AddPage()
	pdf.SetFont("Courier", "", 14)

	lines := SummaryLines(summary)
	y := (pageHeight - float64(len(lines))*8) / 2
	for _, line := range lines {
		pdf.SetXY(margin, y)
		pdf.CellFormat(pageWidth-2*margin, 8, w.tr(line), "", 0, "L", false, 0, "")
		y += 8
	}
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
