package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile implements File for the OS filesystem
type osFile struct {
	absPath string
	relPath string
	info    fs.FileInfo
}

func (f *osFile) Path() string         { return f.absPath }
func (f *osFile) RelativePath() string { return f.relPath }
func (f *osFile) Info() FileInfo       { return f.info }

func (f *osFile) ReadContent() ([]byte, error) {
	return os.ReadFile(f.absPath)
}

// osDirectory implements Directory for the OS filesystem
type osDirectory struct {
	absPath string
}

func (d *osDirectory) Path() string { return d.absPath }

func (d *osDirectory) Walk(fn WalkFunc) error {
	return filepath.Walk(d.absPath, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return callSafely(path, fn, nil, &fs.PathError{Op: "walk", Path: path, Err: walkErr})
		}

		relPath, relErr := filepath.Rel(d.absPath, path)
		if relErr != nil {
			return callSafely(path, fn, nil, &fs.PathError{Op: "rel", Path: path, Err: relErr})
		}

		return callSafely(path, fn, &osFile{absPath: path, relPath: relPath, info: info}, nil)
	})
}

// callSafely converts a panic in fn into an error that stops the walk.
func callSafely(path string, fn WalkFunc, file File, err error) (callbackErr error) {
	defer func() {
		if r := recover(); r != nil {
			callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
		}
	}()
	return fn(file, err)
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open verifies path is a directory and returns it with an absolute path.
func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	return &osDirectory{absPath: absPath}, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
