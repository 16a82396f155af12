package linescan

import (
	"unicode/utf8"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

// Scanner finds call-site records in the lines of a single file.
// It holds no per-file state and may be reused across files.
type Scanner struct {
	markers    errcollect.MarkerSet
	classifier *Classifier
	finder     errcollect.BlockBoundaryFinder
}

// NewScanner creates a scanner.
// Panics if finder is nil.
func NewScanner(markers errcollect.MarkerSet, rules []errcollect.SkipRule, finder errcollect.BlockBoundaryFinder) *Scanner {
	if finder == nil {
		panic("finder cannot be nil")
	}
	return &Scanner{
		markers:    markers,
		classifier: NewClassifier(rules),
		finder:     finder,
	}
}

// ScanLines returns the records found in lines, tagged with displayPath.
//
// A skip trigger whose block end is found moves the cursor to the closing
// line, which is then examined like any other line. A trigger without a block
// end is treated as an ordinary line.
func (s *Scanner) ScanLines(displayPath string, lines []string) []errcollect.ScanRecord {
	var records []errcollect.ScanRecord

	i := 0
	for i < len(lines) {
		line := lines[i]

		if _, ok := s.classifier.Classify(line); ok {
			if end, found := s.finder.FindBlockEnd(lines, i+1); found && end > i {
				i = end
				continue
			}
		}

		if s.markers.Match(line) {
			if joined := ExtractQuoted(line); joined != "" {
				c1, c2, detail := Decompose(joined)
				records = append(records, errcollect.ScanRecord{
					FilePath:  displayPath,
					Line:      i + 1,
					Category1: c1,
					Category2: c2,
					Detail:    detail,
				})
			}
		}
		i++
	}

	return records
}

// SplitLines splits content into lines at every line boundary: "\n", "\r",
// "\r\n", "\v", "\f", the separators U+001C to U+001E, U+0085, U+2028 and
// U+2029. A final boundary does not start an extra empty line. Boundaries are
// not kept.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		if !isLineBoundary(r) {
			i += size
			continue
		}
		lines = append(lines, content[start:i])
		next := i + size
		if r == '\r' && next < len(content) && content[next] == '\n' {
			next++
		}
		i, start = next, next
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
