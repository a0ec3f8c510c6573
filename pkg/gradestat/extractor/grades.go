package extractor

import "strings"

// validGrades is the fixed grade alphabet.
var validGrades = map[string]struct{}{
	"A":  {},
	"B":  {},
	"C":  {},
	"D":  {},
	"E":  {},
	"F":  {},
	"FF": {},
}

// ValidGrades returns the grade alphabet in ascending order.
func ValidGrades() []string {
	return []string{"A", "B", "C", "D", "E", "F", "FF"}
}

// NormalizeGrade trims s and upper-cases it. It is idempotent.
func NormalizeGrade(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsValidGrade reports whether an already normalized value is a known grade.
func IsValidGrade(s string) bool {
	_, ok := validGrades[s]
	return ok
}
