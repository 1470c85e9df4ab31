package search

import (
	"strings"
	"unicode"
)

// HighlightSpan locates the case- and diacritic-insensitive occurrence
// of rawQuery inside original and returns the byte offsets of the
// matched span in the original string, so the presentation layer can
// emphasize it without losing the original casing and accents.
//
// The fold is 1:1 per rune, so the rune offset of the match in the
// folded text is the rune offset in the original.
func HighlightSpan(original, rawQuery string) (start, end int, ok bool) {
	query := []rune(Normalize(rawQuery))
	if len(query) == 0 {
		return 0, 0, false
	}

	origRunes := []rune(original)
	folded := make([]rune, len(origRunes))
	for i, r := range origRunes {
		folded[i] = foldRune(unicode.ToLower(r))
	}

	idx := strings.Index(string(folded), string(query))
	if idx < 0 {
		return 0, 0, false
	}

	// Convert the byte offset in the folded text to a rune offset, then
	// back to byte offsets in the original.
	runeOff := len([]rune(string(folded)[:idx]))
	start = len(string(origRunes[:runeOff]))
	end = start + len(string(origRunes[runeOff:runeOff+len(query)]))
	return start, end, true
}
