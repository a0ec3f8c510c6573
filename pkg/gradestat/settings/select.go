package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoFiles indicates the selection step found nothing to process.
var ErrNoFiles = errors.New("no result files selected")

// resultExts are the extensions offered when listing a directory.
var resultExts = map[string]bool{".csv": true, ".xlsx": true}

// Select resolves args to result file paths.
//
// Relative arguments missing from the working directory are looked up in
// s.LastDir. Without arguments, every .csv and .xlsx file of s.LastDir (or
// the working directory when unset) is selected. The returned Settings
// remember the directory of the first file.
func Select(s Settings, args []string) ([]string, Settings, error) {
	var files []string
	if len(args) == 0 {
		dir := s.LastDir
		if dir == "" {
			dir = "."
		}
		listed, err := listResultFiles(dir)
		if err != nil {
			return nil, s, err
		}
		files = listed
	} else {
		for _, arg := range args {
			files = append(files, resolve(s.LastDir, arg))
		}
	}

	if len(files) == 0 {
		return nil, s, ErrNoFiles
	}

	dir, err := filepath.Abs(filepath.Dir(files[0]))
	if err != nil {
		return nil, s, fmt.Errorf("resolve %s: %w", files[0], err)
	}
	return files, Settings{LastDir: dir}, nil
}

func resolve(lastDir, arg string) string {
	if filepath.IsAbs(arg) || lastDir == "" {
		return arg
	}
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	candidate := filepath.Join(lastDir, arg)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return arg
}

func listResultFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if resultExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
