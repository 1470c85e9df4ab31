package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/katalogo/katalogo-cli/pkg/models"
)

const (
	// DefaultMaxResults caps the suggestion dropdown.
	DefaultMaxResults = 10
	// DefaultMinChars is the minimum normalized query length that
	// produces suggestions.
	DefaultMinChars = 1
)

// Prefix matches rank above substring-only matches; no other relevance
// signal is used.
const (
	scorePrefix    = 1.0
	scoreSubstring = 0.5
)

// Match pairs a product with its relevance score for one query. Matches
// are recomputed on every query and never persisted.
type Match struct {
	Product models.Product
	Score   float64
}

// Search ranks candidates against rawQuery: candidates whose normalized
// title contains the normalized query are scored (1.0 prefix, 0.5
// substring), sorted by score descending with ties broken by Czech
// collation on the original title, and capped at maxResults.
//
// Pure function: candidates are never mutated and identical inputs yield
// identical output. A query shorter than minChars yields no matches.
func Search(candidates []models.Product, rawQuery string, maxResults, minChars int) []Match {
	query := Normalize(rawQuery)
	if utf8.RuneCountInString(query) < minChars || query == "" {
		return nil
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		title := Normalize(c.Title)
		if !strings.Contains(title, query) {
			continue
		}
		score := scoreSubstring
		if strings.HasPrefix(title, query) {
			score = scorePrefix
		}
		matches = append(matches, Match{Product: c, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return CompareCzech(matches[i].Product.Title, matches[j].Product.Title) < 0
	})

	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// FilterByTitle returns the indexes of candidates whose normalized title
// contains the normalized query, in candidate order. This is the
// committed-search visible set: plain containment, no prefix weighting,
// no cap.
func FilterByTitle(candidates []models.Product, rawQuery string) []int {
	query := Normalize(rawQuery)

	visible := make([]int, 0, len(candidates))
	for i, c := range candidates {
		if strings.Contains(Normalize(c.Title), query) {
			visible = append(visible, i)
		}
	}
	return visible
}
