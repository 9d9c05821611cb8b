package reviewreply

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize lowercases text, trims it, and collapses every run of whitespace
// into a single space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeValue normalizes v when it carries text; any other value yields "".
func NormalizeValue(v any) string {
	return Normalize(TextValue(v))
}

// TextValue extracts review text from a loosely typed value. Strings, byte
// slices and Stringers are returned as text, everything else as "".
func TextValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	return ""
}

// isWordRune matches the characters of a \w class: letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// wordRuns splits text into maximal runs of word characters.
func wordRuns(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

// countWords returns the number of \w+ tokens in text.
func countWords(text string) int {
	return len(wordRuns(text))
}
