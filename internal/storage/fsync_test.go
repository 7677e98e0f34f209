package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"tagcloud/internal/testutil"
)

func TestFsyncDir(t *testing.T) {
	dir := t.TempDir()
	if err := FsyncDir(afero.NewOsFs(), dir); err != nil {
		t.Errorf("FsyncDir: %v", err)
	}
}

func TestFsyncDir_NotExists(t *testing.T) {
	err := FsyncDir(afero.NewOsFs(), "/nonexistent/path/dir")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()

	finalPath := filepath.Join(dir, "final.html")
	data := []byte("atomic write content")

	if err := AtomicWriteFile(fs, finalPath, data, dir); err != nil {
		t.Fatal(err)
	}

	// Verify final file has correct contents.
	got, err := os.ReadFile(finalPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(data) {
		t.Errorf("file content = %q, want %q", got, data)
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != FilePerm {
		t.Errorf("file mode = %v, want %v", info.Mode().Perm(), FilePerm)
	}

	// Verify no temp files remain.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1", len(entries))
	}
}

func TestAtomicWriteFile_Overwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/out", DirPerm); err != nil {
		t.Fatal(err)
	}

	// Write initial content.
	if err := AtomicWriteFile(fs, "/out/file.html", []byte("first"), "/out"); err != nil {
		t.Fatal(err)
	}

	// Overwrite.
	if err := AtomicWriteFile(fs, "/out/file.html", []byte("second"), "/out"); err != nil {
		t.Fatal(err)
	}

	got, err := afero.ReadFile(fs, "/out/file.html")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("file content = %q, want %q", got, "second")
	}
}

func TestAtomicWriteFile_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := base.MkdirAll("/out", DirPerm); err != nil {
		t.Fatal(err)
	}
	fs := afero.NewReadOnlyFs(base)

	err := AtomicWriteFile(fs, "/out/file.html", []byte("data"), "/out")
	if err == nil {
		t.Fatal("expected error on read-only filesystem")
	}
	if FileExists(base, "/out/file.html") {
		t.Error("final file should not exist after failed write")
	}
}

func TestAtomicWriteFile_MissingTmpDir(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	finalPath := filepath.Join(dir, "final.html")

	err := AtomicWriteFile(fs, finalPath, []byte("data"), filepath.Join(dir, "missing"))
	if err == nil {
		t.Fatal("expected error for missing temp dir")
	}
	if FileExists(fs, finalPath) {
		t.Error("final file should not exist after failed write")
	}
}

func TestAtomicWriteFile_DirSyncFails(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := base.MkdirAll("/out", DirPerm); err != nil {
		t.Fatal(err)
	}
	fs := &testutil.FailingDirSyncFs{Fs: base}

	err := AtomicWriteFile(fs, "/out/file.html", []byte("complete"), "/out")
	if !errors.Is(err, ErrDirNotSynced) {
		t.Fatalf("AtomicWriteFile error = %v, want ErrDirNotSynced", err)
	}
	if !errors.Is(err, testutil.ErrInjected) {
		t.Errorf("AtomicWriteFile error = %v, want wrapped ErrInjected", err)
	}

	got, err := afero.ReadFile(base, "/out/file.html")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "complete" {
		t.Errorf("file content = %q, want %q", got, "complete")
	}
}
