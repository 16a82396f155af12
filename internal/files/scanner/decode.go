package scanner

import (
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// dropIllFormed removes byte sequences that are not valid UTF-8.
// U+FFFD already present in the input is removed as well.
func dropIllFormed() transform.Transformer {
	return transform.Chain(
		runes.ReplaceIllFormed(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
}

// decodeContent returns content as text, dropping undecodable bytes.
func decodeContent(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}
	decoded, _, err := transform.Bytes(dropIllFormed(), content)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
