package models

// Record is one student's row of the result relation.
type Record struct {
	// RegNo is the registration number exactly as read.
	RegNo string
	// LetterGrade is the trimmed, upper-cased grade.
	LetterGrade string
}

// Result is the (reg_no, letter_grade) relation extracted from one table.
type Result struct {
	// Source is the base name of the input file.
	Source string
	// RegColumn is the position of the registration number column.
	RegColumn int
	// GradeColumn is the position of the grade column.
	GradeColumn int
	// Records holds one entry per matched row with a valid grade.
	Records []Record
	// Dropped counts matched rows whose grade cell was not a valid grade.
	Dropped int
}
