package linescan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vvka-141/errcollect/pkg/errcollect"
)

// FlatBraceFinder ends a block at the first line that is a lone "}".
//
// Only trailing whitespace is stripped, so the brace must sit in column one:
// that is where gofmt puts the closing brace of a top-level function. Nesting
// is not tracked, and a nested block closed in column one ends the skip early.
type FlatBraceFinder struct{}

// FindBlockEnd implements errcollect.BlockBoundaryFinder.
func (FlatBraceFinder) FindBlockEnd(lines []string, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(lines); i++ {
		if strings.TrimRightFunc(lines[i], unicode.IsSpace) == "}" {
			return i, true
		}
	}
	return -1, false
}

// DepthBraceFinder ends a block where the brace depth opened by the trigger
// line returns to zero. The trigger line is lines[start-1].
// Braces inside string literals and comments are counted like any other.
type DepthBraceFinder struct{}

// FindBlockEnd implements errcollect.BlockBoundaryFinder.
func (DepthBraceFinder) FindBlockEnd(lines []string, start int) (int, bool) {
	if start < 0 {
		start = 0
	}
	depth := 0
	if start > 0 && start <= len(lines) {
		depth = braceDelta(lines[start-1])
	}
	opened := depth > 0
	for i := start; i < len(lines); i++ {
		depth += braceDelta(lines[i])
		if depth > 0 {
			opened = true
		}
		if opened && depth <= 0 {
			return i, true
		}
	}
	return -1, false
}

func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// NewBlockFinder returns the finder registered under name.
func NewBlockFinder(name string) (errcollect.BlockBoundaryFinder, error) {
	switch name {
	case "", errcollect.BlockFinderFlat:
		return FlatBraceFinder{}, nil
	case errcollect.BlockFinderDepth:
		return DepthBraceFinder{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown block finder %q (want %q or %q)",
			errcollect.ErrInvalidConfig, name, errcollect.BlockFinderFlat, errcollect.BlockFinderDepth)
	}
}

var (
	_ errcollect.BlockBoundaryFinder = FlatBraceFinder{}
	_ errcollect.BlockBoundaryFinder = DepthBraceFinder{}
)
