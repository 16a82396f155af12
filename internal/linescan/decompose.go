package linescan

import "strings"

// Decompose splits joined literal text at its first two colons.
//
//	"a:b:c:d" -> ("a", "b", "c:d")
//	"a:b"     -> ("a", "", "b")
//	"a"       -> ("", "", "a")
//
// Every field is trimmed of surrounding whitespace.
func Decompose(joined string) (category1, category2, detail string) {
	parts := strings.SplitN(joined, ":", 3)
	switch len(parts) {
	case 3:
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
	case 2:
		return strings.TrimSpace(parts[0]), "", strings.TrimSpace(parts[1])
	default:
		return "", "", strings.TrimSpace(joined)
	}
}
