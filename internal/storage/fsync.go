package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// ErrDirNotSynced is returned by AtomicWriteFile when the new file is already
// in place but its parent directory could not be fsynced.
var ErrDirNotSynced = errors.New("parent directory not synced")

// FsyncDir opens the directory at path and calls fsync on it.
// This ensures directory entries (file names) are durable.
func FsyncDir(fs afero.Fs, path string) error {
	d, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("fsync dir open %s: %w", path, err)
	}
	if err := d.Sync(); err != nil {
		d.Close()
		return fmt.Errorf("fsync dir sync %s: %w", path, err)
	}
	if err := d.Close(); err != nil {
		return fmt.Errorf("fsync dir close %s: %w", path, err)
	}
	return nil
}

// AtomicWriteFile writes data to a temporary file in tmpDir, fsyncs it,
// then renames it to finalPath, and fsyncs the parent directory of finalPath.
// tmpDir must be on the same filesystem as finalPath. On failure finalPath is
// left untouched and the temporary file is removed, except for errors
// matching ErrDirNotSynced, which leave the complete new file at finalPath.
func AtomicWriteFile(fs afero.Fs, finalPath string, data []byte, tmpDir string) error {
	tmp, err := afero.TempFile(fs, tmpDir, ".tagcloud-*")
	if err != nil {
		return fmt.Errorf("atomic write create temp in %s: %w", tmpDir, err)
	}
	tmpPath := tmp.Name()

	// Clean up temp file on any error.
	success := false
	defer func() {
		if !success {
			fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("atomic write data: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("atomic write fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("atomic write close: %w", err)
	}
	if err := fs.Chmod(tmpPath, FilePerm); err != nil {
		return fmt.Errorf("atomic write chmod: %w", err)
	}
	if err := fs.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("atomic write rename %s → %s: %w", tmpPath, finalPath, err)
	}
	success = true

	if err := FsyncDir(fs, filepath.Dir(finalPath)); err != nil {
		return fmt.Errorf("atomic write: %w: %w", ErrDirNotSynced, err)
	}
	return nil
}
