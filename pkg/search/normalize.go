package search

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// diacriticFold maps the Czech diacritic set to base Latin letters. This
// is a closed table, not full Unicode normalization: accented characters
// outside the Czech set pass through unchanged.
var diacriticFold = map[rune]rune{
	'á': 'a', 'č': 'c', 'ď': 'd', 'é': 'e', 'ě': 'e',
	'í': 'i', 'ň': 'n', 'ó': 'o', 'ř': 'r', 'š': 's',
	'ť': 't', 'ú': 'u', 'ů': 'u', 'ý': 'y', 'ž': 'z',
	'Á': 'A', 'Č': 'C', 'Ď': 'D', 'É': 'E', 'Ě': 'E',
	'Í': 'I', 'Ň': 'N', 'Ó': 'O', 'Ř': 'R', 'Š': 'S',
	'Ť': 'T', 'Ú': 'U', 'Ů': 'U', 'Ý': 'Y', 'Ž': 'Z',
}

// Normalize canonicalizes a string for matching: surrounding whitespace
// is trimmed, the string is lowercased and Czech diacritics are replaced
// with their base letters. Always returns a string; empty in, empty out.
func Normalize(s string) string {
	return foldString(strings.ToLower(strings.TrimSpace(s)))
}

// foldRune replaces a single rune outside the printable ASCII range with
// its base letter when the table knows it.
func foldRune(r rune) rune {
	if r > 0x7E {
		if f, ok := diacriticFold[r]; ok {
			return f
		}
	}
	return r
}

func foldString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

// Slugify derives a URL path segment from a display name: lowercase,
// diacritics stripped, runs of non-alphanumeric characters collapsed to
// a single hyphen, leading and trailing hyphens trimmed.
func Slugify(s string) string {
	folded := foldString(strings.ToLower(s))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range folded {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Czech collation for tie-breaks on original (non-normalized) titles.
// Diacritics and case affect tie order even though they don't affect
// matching. The collator keeps internal buffers, hence the lock.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Czech)
)

// CompareCzech compares two strings using Czech collation rules.
// It returns -1, 0 or 1.
func CompareCzech(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
