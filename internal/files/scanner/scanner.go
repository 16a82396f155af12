package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/vvka-141/errcollect/internal/files/filesystem"
	"github.com/vvka-141/errcollect/internal/linescan"
	"github.com/vvka-141/errcollect/pkg/errcollect"
)

// Options configure a Walker.
type Options struct {
	// Extension a file name must end with to be scanned, e.g. ".go".
	Extension string

	// Rules decide exclusion and display paths.
	Rules errcollect.ExclusionRules
}

// Walker discovers source files and scans each one for call sites.
// It keeps no state between ScanTree calls.
type Walker struct {
	lines      *linescan.Scanner
	opts       Options
	fsProvider filesystem.FileSystemProvider
	logger     errcollect.Logger
}

// NewWalker creates a walker over the OS filesystem.
// Panics if lines or logger is nil.
func NewWalker(lines *linescan.Scanner, opts Options, logger errcollect.Logger) *Walker {
	return NewWalkerWithFS(lines, opts, logger, filesystem.NewOSFileSystem())
}

// NewWalkerWithFS creates a walker with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if any argument is nil.
func NewWalkerWithFS(lines *linescan.Scanner, opts Options, logger errcollect.Logger, fsProvider filesystem.FileSystemProvider) *Walker {
	if lines == nil {
		panic("lines cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if opts.Extension == "" {
		opts.Extension = errcollect.DefaultExtension
	}
	return &Walker{
		lines:      lines,
		opts:       opts,
		fsProvider: fsProvider,
		logger:     logger,
	}
}

// ScanTree walks root and returns every record found in eligible files.
//
// Files that cannot be read are logged and listed in ScanResult.Failures;
// they do not stop the walk. Only a root that cannot be opened is an error.
func (w *Walker) ScanTree(root string) (errcollect.ScanResult, error) {
	if err := CheckRoot(w.fsProvider, root); err != nil {
		return errcollect.ScanResult{}, err
	}

	dir, err := w.fsProvider.Open(root)
	if err != nil {
		return errcollect.ScanResult{}, fmt.Errorf("%w: %s: %v", errcollect.ErrRootNotFound, root, err)
	}

	var result errcollect.ScanResult

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			w.recordFailure(&result, failurePath(walkErr), walkErr)
			return nil
		}

		if file.Info().IsDir() || !strings.HasSuffix(file.Info().Name(), w.opts.Extension) {
			return nil
		}

		fullPath := file.Path()
		if w.opts.Rules.ExcludesFile(fullPath) {
			w.logger.Verbose("Excluded %s", fullPath)
			result.FilesExcluded++
			return nil
		}

		records, err := w.scanFile(file)
		if err != nil {
			w.recordFailure(&result, fullPath, err)
			return nil
		}

		w.logger.Verbose("Scanned %s: %d record(s)", file.RelativePath(), len(records))
		result.FilesScanned++
		result.Records = append(result.Records, records...)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("error walking %s: %w", root, err)
	}

	return result, nil
}

// CheckRoot verifies that root exists and is a directory.
// Failures wrap errcollect.ErrRootNotFound.
func CheckRoot(fsProvider filesystem.FileSystemProvider, root string) error {
	info, err := fsProvider.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errcollect.ErrRootNotFound, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", errcollect.ErrRootNotFound, root)
	}
	return nil
}

// scanFile reads and scans a single file. Content is released on return.
func (w *Walker) scanFile(file filesystem.File) ([]errcollect.ScanRecord, error) {
	content, err := file.ReadContent()
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := decodeContent(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	displayPath := w.opts.Rules.DisplayPath(file.Path())
	return w.lines.ScanLines(displayPath, linescan.SplitLines(text)), nil
}

func (w *Walker) recordFailure(result *errcollect.ScanResult, path string, err error) {
	w.logger.Error("Error reading file %s: %v", path, err)
	result.Failures = append(result.Failures, errcollect.FileFailure{Path: path, Err: err})
}

func failurePath(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}
	return ""
}

// Verify Walker implements the interface at compile time
var _ errcollect.TreeScanner = (*Walker)(nil)
