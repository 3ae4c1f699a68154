package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/texcalc/pkg/fsutil"
)

func writeTemp(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.tex")
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "$1 + 2$", 0o600)

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(content) != "$1 + 2$" {
		t.Errorf("content = %q", content)
	}
	if info.Size != 7 || info.Mode.Perm() != 0o600 || info.Path != path {
		t.Errorf("info = %+v", info)
	}

	if _, _, err := fsutil.ReadFile(ctx, filepath.Join(t.TempDir(), "missing")); !errors.Is(err, fsutil.ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}
	if _, _, err := fsutil.ReadFile(ctx, t.TempDir()); !errors.Is(err, fsutil.ErrIsDirectory) {
		t.Errorf("directory error = %v, want ErrIsDirectory", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, _, err := fsutil.ReadFile(cancelled, path); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context error = %v", err)
	}
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "$1$", 0o644)

	_, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}

	if modified, err := fsutil.CheckModified(ctx, info); err != nil || modified {
		t.Errorf("CheckModified() on untouched file = %v, %v", modified, err)
	}

	if err := os.WriteFile(path, []byte("$2$"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Same size; force a distinct mod time so only content can differ.
	if err := os.Chtimes(path, info.ModTime, info.ModTime); err != nil {
		t.Fatal(err)
	}
	if modified, err := fsutil.CheckModified(ctx, info); err != nil || !modified {
		t.Errorf("CheckModified() after same-size rewrite = %v, %v", modified, err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if modified, err := fsutil.CheckModified(ctx, info); err != nil || !modified {
		t.Errorf("CheckModified() after delete = %v, %v", modified, err)
	}

	if _, err := fsutil.CheckModified(ctx, nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
		t.Errorf("CheckModified(nil) error = %v", err)
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.tex")

	if err := fsutil.WriteAtomic(ctx, path, []byte("$1 = 1$"), 0); err != nil {
		t.Fatalf("WriteAtomic() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil || string(got) != "$1 = 1$" {
		t.Errorf("file content = %q, %v", got, err)
	}
	stat, err := os.Stat(path)
	if err != nil || stat.Mode().Perm() != fsutil.DefaultFileMode {
		t.Errorf("mode = %v, %v", stat.Mode().Perm(), err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}

	err = fsutil.WriteAtomic(ctx, filepath.Join(dir, "missing", "out.tex"), nil, 0)
	if err == nil {
		t.Error("WriteAtomic() into missing directory should fail")
	}
}

func TestWriteSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "$1 + 2$", 0o640)

	_, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		t.Fatal(err)
	}

	if err := fsutil.WriteSnapshot(ctx, info, []byte("$1 + 2 = 3$")); err != nil {
		t.Fatalf("WriteSnapshot() error: %v", err)
	}
	stat, err := os.Stat(path)
	if err != nil || stat.Mode().Perm() != 0o640 {
		t.Errorf("mode not preserved: %v, %v", stat.Mode().Perm(), err)
	}

	// The old snapshot is now stale.
	if err := fsutil.WriteSnapshot(ctx, info, []byte("x")); !errors.Is(err, fsutil.ErrModified) {
		t.Errorf("stale snapshot error = %v, want ErrModified", err)
	}
}

func TestBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeTemp(t, "$1 + 2$", 0o644)

	backupPath, err := fsutil.CreateBackup(ctx, path)
	if err != nil {
		t.Fatalf("CreateBackup() error: %v", err)
	}
	if backupPath != path+fsutil.BackupSuffix {
		t.Errorf("backup path = %q", backupPath)
	}

	got, err := os.ReadFile(backupPath)
	if err != nil || string(got) != "$1 + 2$" {
		t.Errorf("backup content = %q, %v", got, err)
	}

	removed, err := fsutil.RemoveBackup(path)
	if err != nil || !removed {
		t.Errorf("RemoveBackup() = %v, %v", removed, err)
	}
	removed, err = fsutil.RemoveBackup(path)
	if err != nil || removed {
		t.Errorf("second RemoveBackup() = %v, %v", removed, err)
	}

	if _, err := fsutil.CreateBackup(ctx, filepath.Join(t.TempDir(), "missing")); !errors.Is(err, fsutil.ErrNotFound) {
		t.Errorf("CreateBackup(missing) error = %v", err)
	}
}
