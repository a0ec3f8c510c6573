// Package gradestat reads student result files, detects their registration
// number and grade columns, and reports the grade distribution.
package gradestat

import "github.com/ukaji3/gradestat-go/pkg/gradestat/loader"

// Options configures batch processing.
type Options struct {
	// Delimiter is the CSV field separator. If 0, it is sniffed per file.
	Delimiter rune
	// SkipFailed keeps going when a file fails instead of aborting the batch.
	SkipFailed bool
}

// DefaultOptions returns default options: sniffed delimiter, abort on first failure.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) loaderOptions() loader.Options {
	return loader.Options{Delimiter: o.Delimiter}
}
