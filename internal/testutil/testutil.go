// Package testutil provides fixtures shared by the tag cloud tests.
package testutil

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
)

// ExampleText is the reference sentence used throughout the tests.
const ExampleText = "the cat sat on the mat. The CAT ran."

// ErrInjected is returned by the failing filesystem helpers.
var ErrInjected = errors.New("injected I/O failure")

// SampleDocument returns a short multi-line document with known counts:
// search ×4, index ×3, the ×3, query ×2, engine ×2 and eight words seen once
// (22 words, 13 distinct).
func SampleDocument() string {
	return "Search engines build an index.\n" +
		"A query hits the index; the engine ranks results.\n" +
		"\n" +
		"Search, search, SEARCH! Query the index engine 42 times.\n"
}

// NewFs returns an in-memory filesystem with a /data directory.
func NewFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/data", 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	return fs
}

// WriteSource writes text to path on fs.
func WriteSource(t *testing.T, fs afero.Fs, path, text string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(text), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

// ReadOutput returns the contents of path on fs.
func ReadOutput(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return string(data)
}

// AssertFileExists checks that a file exists at the given path.
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if _, err := fs.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

// AssertNoFile checks that nothing exists at the given path.
func AssertNoFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if _, err := fs.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file at %s (stat err: %v)", path, err)
	}
}

// FailingReadFs wraps an afero.Fs so that every opened file returns
// ErrInjected once After bytes have been read.
type FailingReadFs struct {
	afero.Fs
	After int
}

// Open opens name on the wrapped filesystem with a failing reader.
func (f *FailingReadFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &failingFile{File: file, remaining: f.After}, nil
}

type failingFile struct {
	afero.File
	remaining int
}

func (f *failingFile) Read(p []byte) (int, error) {
	if f.remaining <= 0 {
		return 0, ErrInjected
	}
	if len(p) > f.remaining {
		p = p[:f.remaining]
	}
	n, err := f.File.Read(p)
	f.remaining -= n
	if errors.Is(err, io.EOF) {
		return n, ErrInjected
	}
	return n, err
}

// FailingRenameFs wraps an afero.Fs so that Rename always fails.
type FailingRenameFs struct {
	afero.Fs
}

// Rename always returns ErrInjected.
func (f *FailingRenameFs) Rename(_, _ string) error {
	return ErrInjected
}

// FailingDirSyncFs wraps an afero.Fs so that Sync on an opened directory
// returns ErrInjected.
type FailingDirSyncFs struct {
	afero.Fs
}

// Open opens name on the wrapped filesystem. Directories are returned with a
// failing Sync.
func (f *FailingDirSyncFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		return &unsyncedDir{File: file}, nil
	}
	return file, nil
}

type unsyncedDir struct {
	afero.File
}

func (d *unsyncedDir) Sync() error {
	return ErrInjected
}
