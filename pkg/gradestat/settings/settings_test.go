package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, Settings{LastDir: "/srv/results"}.Save(path))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/results", s.LastDir)

	// Save overwrites.
	require.NoError(t, Settings{LastDir: "/tmp"}.Save(path))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp", s.LastDir)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, s.LastDir)
}

func TestSelectListsLastDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.xlsx"))
	touch(t, filepath.Join(dir, "a.csv"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".hidden.csv"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	files, next, err := Select(Settings{LastDir: dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.xlsx")}, files)
	assert.Equal(t, dir, next.LastDir)
}

func TestSelectEmptyDir(t *testing.T) {
	in := Settings{LastDir: t.TempDir()}
	files, next, err := Select(in, nil)
	assert.ErrorIs(t, err, ErrNoFiles)
	assert.Nil(t, files)
	assert.Equal(t, in, next)
}

func TestSelectResolvesAgainstLastDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "csc101.csv"))

	files, next, err := Select(Settings{LastDir: dir}, []string{"csc101.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "csc101.csv")}, files)
	assert.Equal(t, dir, next.LastDir)
}

func TestSelectUpdatesLastDir(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	path := filepath.Join(newDir, "mth102.xlsx")
	touch(t, path)

	files, next, err := Select(Settings{LastDir: oldDir}, []string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
	assert.Equal(t, newDir, next.LastDir)
}
