// Package settings persists the last directory a result file was picked
// from and resolves the files to process.
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the settings file kept next to the executable.
const FileName = "config.txt"

// Settings is the persisted user state.
type Settings struct {
	// LastDir is the directory of the most recent selection.
	LastDir string
}

// DefaultPath returns the settings file path next to the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Load reads settings from path. A missing file yields zero Settings.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return Settings{}, sc.Err()
	}
	return Settings{LastDir: strings.TrimSpace(sc.Text())}, nil
}

// Save overwrites path with s.
func (s Settings) Save(path string) error {
	if err := os.WriteFile(path, []byte(s.LastDir), 0644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
