package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOSFileSystem()

	d, err := fsys.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fsys := NewOSFileSystem()

	if _, err := fsys.Open(filepath.Join(t.TempDir(), "nonexistent")); err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "main.go")
	if err := os.WriteFile(filePath, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewOSFileSystem().Open(filePath); err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "item.go")
	expected := "package credential"
	if err := os.WriteFile(filePath, []byte(expected), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()

	info, err := fsys.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() || info.Name() != "item.go" || info.Size() != int64(len(expected)) {
		t.Errorf("Stat() = (%q, dir=%v), want item.go file", info.Name(), info.IsDir())
	}

	if _, err := fsys.Stat(filepath.Join(dir, "nope")); err == nil {
		t.Error("Stat(nonexistent) should return error")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()

	// dir/
	//   a.go
	//   sub/
	//     b.go
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a"), 0644)
	os.WriteFile(filepath.Join(sub, "b.go"), []byte("package sub"), 0644)

	d, err := NewOSFileSystem().Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var files []string
	contents := map[string]string{}
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.Info().IsDir() {
			return nil
		}
		rel := filepath.ToSlash(f.RelativePath())
		files = append(files, rel)
		data, err := f.ReadContent()
		if err != nil {
			return err
		}
		contents[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(files) != 2 || files[0] != "a.go" || files[1] != "sub/b.go" {
		t.Fatalf("Walk found %v, want [a.go sub/b.go] in lexical order", files)
	}
	if contents["sub/b.go"] != "package sub" {
		t.Errorf("ReadContent(sub/b.go) = %q", contents["sub/b.go"])
	}
}

func TestOSFileSystem_Walk_CallbackPanicBecomesError(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a"), 0644)

	d, err := NewOSFileSystem().Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	err = d.Walk(func(f File, walkErr error) error {
		if !f.Info().IsDir() {
			panic("boom")
		}
		return nil
	})
	if err == nil {
		t.Fatal("Walk() should convert the callback panic into an error")
	}
}

func TestOSFileSystem_Walk_ReportsErrorsAsPathError(t *testing.T) {
	d := &osDirectory{absPath: filepath.Join(t.TempDir(), "vanished")}

	var got *fs.PathError
	err := d.Walk(func(f File, walkErr error) error {
		if f != nil {
			t.Errorf("file should be nil on walk error, got %s", f.Path())
		}
		if !errors.As(walkErr, &got) {
			t.Errorf("walk error %v is not a *fs.PathError", walkErr)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if got == nil || got.Path != d.absPath {
		t.Errorf("PathError = %+v, want path %q", got, d.absPath)
	}
}
