package errcollect

import (
	"regexp"
	"strconv"
	"strings"
)

// ScanRecord is one error-message call site found by the scanner.
type ScanRecord struct {
	// FilePath is the display path: the full path with the strip pattern removed.
	FilePath string

	// Line is the 1-based line number of the call site.
	Line int

	// Category1 and Category2 are the colon-separated prefixes of the message.
	// Either may be empty.
	Category1 string
	Category2 string

	// Detail is the remainder of the message.
	Detail string
}

// Row returns the record in report column order.
func (r ScanRecord) Row() []string {
	return []string{r.FilePath, strconv.Itoa(r.Line), r.Category1, r.Category2, r.Detail}
}

// MarkerSet is the list of substrings that flag a line as a call site.
// Matching is unanchored: a line matches when it contains any marker.
type MarkerSet []string

// Match reports whether line contains at least one marker.
func (m MarkerSet) Match(line string) bool {
	for _, marker := range m {
		if marker != "" && strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// SkipRule recognises the first line of a function whose body is not scanned.
// A line matches when, trimmed of surrounding whitespace, it starts with
// Keyword and the untrimmed line contains Fragment.
type SkipRule struct {
	Name     string `yaml:"name"`
	Keyword  string `yaml:"keyword"`
	Fragment string `yaml:"fragment"`
}

// Matches reports whether line starts a function covered by the rule.
func (r SkipRule) Matches(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), r.Keyword) &&
		strings.Contains(line, r.Fragment)
}

// ExclusionRules decide which files are scanned and how their paths are displayed.
// Constructed once per run and read-only afterwards.
type ExclusionRules struct {
	// ExcludedFileSuffixes excludes any file whose full path ends with an entry.
	ExcludedFileSuffixes []string

	// ExcludedFolderSubstrings excludes any file whose full path contains an entry.
	ExcludedFolderSubstrings []string

	// PathStrip is removed from full paths to produce display paths. May be nil.
	PathStrip *regexp.Regexp
}

// ExcludesFile reports whether the file at fullPath must not be scanned.
func (e ExclusionRules) ExcludesFile(fullPath string) bool {
	for _, suffix := range e.ExcludedFileSuffixes {
		if suffix != "" && strings.HasSuffix(fullPath, suffix) {
			return true
		}
	}
	for _, folder := range e.ExcludedFolderSubstrings {
		if folder != "" && strings.Contains(fullPath, folder) {
			return true
		}
	}
	return false
}

// DisplayPath removes every match of the strip pattern from fullPath.
func (e ExclusionRules) DisplayPath(fullPath string) string {
	if e.PathStrip == nil {
		return fullPath
	}
	return e.PathStrip.ReplaceAllString(fullPath, "")
}

// BlockBoundaryFinder locates the line that closes a skipped function body.
type BlockBoundaryFinder interface {
	// FindBlockEnd searches lines from start (inclusive) and returns the index
	// of the closing line, or false when the block is not terminated.
	FindBlockEnd(lines []string, start int) (int, bool)
}

// FileFailure records a file that could not be read during a walk.
type FileFailure struct {
	Path string
	Err  error
}

// ScanResult is the aggregate output of one tree walk.
type ScanResult struct {
	Records       []ScanRecord
	FilesScanned  int
	FilesExcluded int
	Failures      []FileFailure
}

// TreeScanner walks a source tree and collects call-site records.
type TreeScanner interface {
	ScanTree(root string) (ScanResult, error)
}
