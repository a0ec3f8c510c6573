package loader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// candidateDelimiters are tried in order when no delimiter is configured.
var candidateDelimiters = []rune{',', ';', '\t'}

const sniffBufferSize = 64 * 1024

// readCSV reads every record of a delimited file as raw strings.
func readCSV(path string, delim rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	// Strip a UTF-8 BOM so it does not end up in the first cell.
	br := bufio.NewReaderSize(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())), sniffBufferSize)

	if delim == 0 {
		delim, err = sniffDelimiter(br)
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
	}

	r := csv.NewReader(br)
	r.Comma = delim
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// sniffDelimiter trial-parses the buffered head of the input with every
// candidate and picks the one yielding the most records of the same width,
// with at least two fields. Ties go to the earlier candidate; comma when
// nothing qualifies.
func sniffDelimiter(br *bufio.Reader) (rune, error) {
	buf, err := br.Peek(br.Size())
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, err
	}
	// A full buffer may end mid-record; only parse complete lines.
	if len(buf) == br.Size() {
		if cut := bytes.LastIndexByte(buf, '\n'); cut >= 0 {
			buf = buf[:cut+1]
		}
	}

	best, bestScore := candidateDelimiters[0], 0
	for _, d := range candidateDelimiters {
		if score := delimiterScore(buf, d); score > bestScore {
			best, bestScore = d, score
		}
	}
	return best, nil
}

// delimiterScore counts the records of sample that have the width of its
// first record. A delimiter that splits nothing or breaks quoting scores 0.
func delimiterScore(sample []byte, delim rune) int {
	r := csv.NewReader(bytes.NewReader(sample))
	r.Comma = delim
	r.FieldsPerRecord = -1

	width, score := 0, 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if score == 0 {
				return 0
			}
			break
		}
		if width == 0 {
			if len(record) < 2 {
				return 0
			}
			width = len(record)
		}
		if len(record) == width {
			score++
		}
	}
	return score
}
