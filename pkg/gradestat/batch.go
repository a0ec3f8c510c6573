package gradestat

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/gradestat-go/pkg/gradestat/models"
	"github.com/ukaji3/gradestat-go/pkg/gradestat/report"
)

// ReportFileName is the name of the combined report.
const ReportFileName = "Result analytics.pdf"

// ReportStats describes a finished report.
type ReportStats struct {
	// Path is where the report was written.
	Path string
	// Files is the number of input files in the report.
	Files int
	// Pages is the number of pages written.
	Pages int
	// Failed holds the errors of skipped files when SkipFailed is set.
	Failed []error
}

// DefaultReportPath returns the report path next to the first input file.
func DefaultReportPath(paths []string) string {
	if len(paths) == 0 {
		return ReportFileName
	}
	return filepath.Join(filepath.Dir(paths[0]), ReportFileName)
}

// Summaries analyzes paths in order. Without SkipFailed, the first failure
// stops the batch and is returned alone; with it, every failure is collected
// and the successful summaries are still returned.
func Summaries(paths []string, opts Options) ([]models.GradeSummary, []error) {
	var (
		summaries []models.GradeSummary
		failed    []error
	)
	for _, path := range paths {
		_, summary, err := Analyze(path, opts)
		if err != nil {
			if !opts.SkipFailed {
				return nil, []error{err}
			}
			slog.Warn("skipping file", slog.String("file", path), slog.Any("error", err))
			failed = append(failed, err)
			continue
		}
		slog.Info("analyzed file",
			slog.String("file", path),
			slog.Int("students", summary.Total))
		summaries = append(summaries, summary)
	}
	return summaries, failed
}

// Report writes one PDF with a chart page and a text page per input file.
// Files are processed one at a time. The report is only written once every
// page has been built, so a failed batch leaves no partial output behind.
func Report(paths []string, outPath string, opts Options) (ReportStats, error) {
	if outPath == "" {
		outPath = DefaultReportPath(paths)
	}

	summaries, failed := Summaries(paths, opts)
	if !opts.SkipFailed && len(failed) > 0 {
		return ReportStats{}, failed[0]
	}
	if len(summaries) == 0 {
		return ReportStats{Failed: failed}, ErrNothingProcessed
	}

	w := report.NewWriter()
	for _, summary := range summaries {
		if err := w.AddFile(summary); err != nil {
			return ReportStats{Failed: failed}, NewFileError(summary.Source, "report", err)
		}
	}

	if err := w.WriteFile(outPath); err != nil {
		return ReportStats{Failed: failed}, fmt.Errorf("write %s: %w", outPath, err)
	}

	return ReportStats{
		Path:   outPath,
		Files:  w.Files(),
		Pages:  w.Pages(),
		Failed: failed,
	}, nil
}
