package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gradestat-go/pkg/gradestat"
	"github.com/ukaji3/gradestat-go/pkg/gradestat/settings"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
		ok       bool
	}{
		{"", 0, true},
		{",", ',', true},
		{";", ';', true},
		{"tab", '\t', true},
		{`\t`, '\t', true},
		{"|", '|', true},
		{",,", 0, false},
		{`"`, 0, false},
	}

	for _, tt := range tests {
		got, err := parseDelimiter(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("parseDelimiter(%q) error = %v, expected ok=%v", tt.input, err, tt.ok)
			continue
		}
		if got != tt.expected {
			t.Errorf("parseDelimiter(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(t.TempDir(), settings.FileName)
	input := filepath.Join(dir, "csc101.csv")
	require.NoError(t, os.WriteFile(input, []byte("2020/123456,A\n2020/123457,b\n"), 0644))

	out, err := execute(t, "report", input, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")
	assert.FileExists(t, filepath.Join(dir, gradestat.ReportFileName))

	// The directory of the selection is remembered.
	s, err := settings.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, dir, s.LastDir)

	// A second run without arguments picks files from the remembered directory.
	report := filepath.Join(t.TempDir(), "again.pdf")
	_, err = execute(t, "report", "--config", cfg, "-o", report)
	require.NoError(t, err)
	assert.FileExists(t, report)
}

func TestReportCommandFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(t.TempDir(), settings.FileName)
	input := filepath.Join(dir, "csc101.docx")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0644))

	_, err := execute(t, "report", input, "--config", cfg)
	assert.ErrorIs(t, err, gradestat.ErrUnsupportedFormat)
	assert.NoFileExists(t, filepath.Join(dir, gradestat.ReportFileName))
}

func TestSummaryCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(t.TempDir(), settings.FileName)
	input := filepath.Join(dir, "mth102.csv")
	require.NoError(t, os.WriteFile(input, []byte("2020/123456;FF\n2020/123457;ff\n2020/123458;E\n"), 0644))

	out, err := execute(t, "summary", input, "--config", cfg, "--delimiter", ";")
	require.NoError(t, err)
	assert.Contains(t, out, "mth102.csv")
	assert.Contains(t, out, "FF")
	assert.Contains(t, out, "66.67%")
}

func TestSummaryCommandJSON(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(t.TempDir(), settings.FileName)
	input := filepath.Join(dir, "phy103.csv")
	require.NoError(t, os.WriteFile(input, []byte("2020/123456,A\n2020/123457,A\n2020/123458,B\n2020/123459,ABS\n"), 0644))

	out, err := execute(t, "summary", input, "--config", cfg, "--json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "phy103.csv", got[0]["source"])
	assert.Equal(t, float64(3), got[0]["total"])
	assert.Equal(t, float64(1), got[0]["ungraded"])
}
