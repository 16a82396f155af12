package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents a walked entry with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walked root
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo

	// ReadContent returns the file's content. The content is read on every
	// call; nothing is cached between calls.
	ReadContent() ([]byte, error)
}

// WalkFunc is called for every entry under a Directory, the root included.
//
// When an entry cannot be visited, file is nil and err is an *fs.PathError
// naming it. Returning nil continues the walk; returning an error stops it.
type WalkFunc func(file File, err error) error

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk visits the directory tree in lexical order.
	Walk(fn WalkFunc) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
