// Package main provides the CLI entry point for gradestat.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ukaji3/gradestat-go/internal/logging"
	"github.com/ukaji3/gradestat-go/pkg/gradestat"
	"github.com/ukaji3/gradestat-go/pkg/gradestat/report"
	"github.com/ukaji3/gradestat-go/pkg/gradestat/settings"
)

var (
	outputPath   string
	delimiter    string
	skipFailed   bool
	settingsPath string
	logLevel     string
	logFormat    string
	noColor      bool
	jsonOutput   bool
	pretty       bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gradestat",
		Short: "Grade distribution reports from student result files",
		Long: `gradestat reads student result files (.csv or .xlsx), detects the
registration number and letter grade columns, and reports how many
students earned each grade.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, logFormat, cmd.ErrOrStderr())
			if noColor {
				color.NoColor = true
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&delimiter, "delimiter", "", `CSV field separator, e.g. ";" or "tab" (default: sniffed)`)
	flags.BoolVar(&skipFailed, "skip-failed", false, "Skip files that cannot be processed instead of aborting")
	flags.StringVar(&settingsPath, "config", "", "Settings file remembering the last directory (default: config.txt next to the executable)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text, json")
	flags.BoolVar(&noColor, "no-color", false, "Disable coloured output")

	reportCmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Write a PDF with a pie chart and a summary page per file",
		Long: `Write a PDF with a pie chart and a summary page per file.
Without arguments, every .csv and .xlsx file in the last used directory is processed.`,
		RunE: runReport,
	}
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "", `Report path (default: "Result analytics.pdf" next to the first file)`)

	summaryCmd := &cobra.Command{
		Use:   "summary [files...]",
		Short: "Print the grade counts of each file",
		RunE:  runSummary,
	}
	summaryCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summaries as JSON")
	summaryCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(reportCmd, summaryCmd)
	return rootCmd
}

func runReport(cmd *cobra.Command, args []string) error {
	files, opts, err := prepare(args)
	if err != nil {
		return err
	}

	stats, err := gradestat.Report(files, outputPath, opts)
	out := cmd.OutOrStdout()
	for _, ferr := range stats.Failed {
		color.New(color.FgYellow).Fprintf(out, "skipped: %v\n", ferr)
	}
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	color.New(color.FgGreen).Fprintf(out, "Report written to %s (%d files, %d pages)\n",
		stats.Path, stats.Files, stats.Pages)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	files, opts, err := prepare(args)
	if err != nil {
		return err
	}

	summaries, failed := gradestat.Summaries(files, opts)
	out := cmd.OutOrStdout()
	if !opts.SkipFailed && len(failed) > 0 {
		return fmt.Errorf("summary failed: %w", failed[0])
	}
	for _, ferr := range failed {
		color.New(color.FgYellow).Fprintf(out, "skipped: %v\n", ferr)
	}
	if len(summaries) == 0 {
		return gradestat.ErrNothingProcessed
	}

	if jsonOutput {
		if err := report.WriteJSON(out, summaries, pretty); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return nil
	}
	report.PrintSummaries(out, summaries)
	return nil
}

// prepare resolves the input files, remembers their directory and builds
// the processing options.
func prepare(args []string) ([]string, gradestat.Options, error) {
	opts := gradestat.DefaultOptions()
	opts.SkipFailed = skipFailed

	delim, err := parseDelimiter(delimiter)
	if err != nil {
		return nil, opts, err
	}
	opts.Delimiter = delim

	path := settingsPath
	if path == "" {
		if path, err = settings.DefaultPath(); err != nil {
			return nil, opts, err
		}
	}

	current, err := settings.Load(path)
	if err != nil {
		slog.Warn("ignoring unreadable settings", slog.String("path", path), slog.Any("error", err))
	}

	files, next, err := settings.Select(current, args)
	if err != nil {
		return nil, opts, err
	}
	if err := next.Save(path); err != nil {
		slog.Warn("could not remember last directory", slog.String("path", path), slog.Any("error", err))
	}

	slog.Debug("selected files", slog.Any("files", files), slog.String("last_dir", next.LastDir))
	return files, opts, nil
}

// parseDelimiter accepts "", "tab" or a single character.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter: %q (must be a single character)", s)
	}
	return r, nil
}
