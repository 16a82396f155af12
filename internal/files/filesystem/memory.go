package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File for in-memory entries
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	readErr error
	info    *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.readErr != nil {
		return nil, &fs.PathError{Op: "read", Path: f.absPath, Err: f.readErr}
	}
	return f.content, nil
}

// memoryDirectory implements Directory for the in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn WalkFunc) error {
	entries := d.fs.entriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	for _, entry := range entries {
		if err := callSafely(entry.absPath, fn, entry, nil); err != nil {
			return err
		}
	}
	return nil
}

// MemoryFileSystem implements FileSystemProvider for tests.
// Paths use forward slashes regardless of the host OS.
type MemoryFileSystem struct {
	files map[string]*memoryFile
	root  string
}

// NewMemoryFileSystem creates an in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.addDir(root)
	return mfs
}

// Root returns the root path of the filesystem.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a text file. Relative paths are resolved against the root.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddBytes(filePath, []byte(content))
}

// AddBytes adds a file with raw content, which need not be valid UTF-8.
func (mfs *MemoryFileSystem) AddBytes(filePath string, content []byte) {
	mfs.put(filePath, content, nil)
}

// AddUnreadable adds a file whose ReadContent fails with err.
func (mfs *MemoryFileSystem) AddUnreadable(filePath string, err error) {
	mfs.put(filePath, nil, err)
}

func (mfs *MemoryFileSystem) put(filePath string, content []byte, readErr error) {
	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		content: content,
		readErr: readErr,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	for dir := path.Dir(absPath); dir != mfs.root && strings.HasPrefix(dir, mfs.prefix()); dir = path.Dir(dir) {
		if _, exists := mfs.files[dir]; exists {
			break
		}
		mfs.addDir(dir)
	}
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.files[dir] = &memoryFile{
		absPath: dir,
		relPath: mfs.relative(dir),
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// resolve maps a caller path to its absolute in-memory form.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	return strings.TrimPrefix(absPath, mfs.prefix())
}

func (mfs *MemoryFileSystem) prefix() string {
	if mfs.root == "/" {
		return "/"
	}
	return mfs.root + "/"
}

// entriesUnder returns basePath and every entry beneath it.
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryFile {
	prefix := basePath + "/"
	if basePath == "/" {
		prefix = "/"
	}

	var entries []*memoryFile
	for p, file := range mfs.files {
		if p == basePath || strings.HasPrefix(p, prefix) {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
