package linescan

import (
	"regexp"
	"strings"
)

var quotedPattern = regexp.MustCompile(`"([^"]*)"`)

// ExtractQuoted returns the contents of every double-quoted literal on line,
// left to right, joined by a single space. Escaped quotes are not recognised.
// Returns "" when the line holds no quoted literal.
func ExtractQuoted(line string) string {
	matches := quotedPattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return ""
	}
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, m[1])
	}
	return strings.Join(parts, " ")
}
