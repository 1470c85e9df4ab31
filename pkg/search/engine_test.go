package search

import (
	"reflect"
	"testing"

	"github.com/katalogo/katalogo-cli/pkg/models"
)

func product(title string) models.Product {
	return models.Product{Title: title, URL: "/cs/katalog/test/" + Slugify(title) + "/"}
}

func titles(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Product.Title
	}
	return out
}

func TestSearchPrefixBeforeSubstring(t *testing.T) {
	candidates := []models.Product{
		product("Bílý jogurt"),
		product("Jogurt borůvkový"),
	}

	got := titles(Search(candidates, "jogurt", DefaultMaxResults, DefaultMinChars))
	want := []string{"Jogurt borůvkový", "Bílý jogurt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search order = %v, want %v", got, want)
	}
}

func TestSearchDiacriticInsensitive(t *testing.T) {
	candidates := []models.Product{
		product("Švestková šťáva"),
		product("Chléb"),
	}

	got := Search(candidates, "svestkova", DefaultMaxResults, DefaultMinChars)
	if len(got) != 1 || got[0].Product.Title != "Švestková šťáva" {
		t.Fatalf("expected the plum juice match, got %v", titles(got))
	}
	if got[0].Score != 1.0 {
		t.Errorf("prefix match score = %v, want 1.0", got[0].Score)
	}
}

func TestSearchCzechTieBreak(t *testing.T) {
	candidates := []models.Product{
		product("Jahody"),
		product("Jablka"),
	}

	got := titles(Search(candidates, "ja", DefaultMaxResults, DefaultMinChars))
	want := []string{"Jablka", "Jahody"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie-break order = %v, want %v", got, want)
	}
}

func TestSearchCap(t *testing.T) {
	var candidates []models.Product
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		candidates = append(candidates, product("Mouka "+suffix))
	}

	got := Search(candidates, "mouka", DefaultMaxResults, DefaultMinChars)
	if len(got) != DefaultMaxResults {
		t.Errorf("result count = %d, want %d", len(got), DefaultMaxResults)
	}
}

func TestSearchBelowMinChars(t *testing.T) {
	candidates := []models.Product{product("Jablka")}

	if got := Search(candidates, "j", DefaultMaxResults, 2); got != nil {
		t.Errorf("expected nil below minChars, got %v", titles(got))
	}
	if got := Search(candidates, "   ", DefaultMaxResults, DefaultMinChars); got != nil {
		t.Errorf("expected nil for whitespace query, got %v", titles(got))
	}
}

func TestSearchNoMatch(t *testing.T) {
	candidates := []models.Product{product("Jablka"), product("Hrušky")}

	if got := Search(candidates, "banán", DefaultMaxResults, DefaultMinChars); len(got) != 0 {
		t.Errorf("expected no matches, got %v", titles(got))
	}
}

func TestSearchDeterministic(t *testing.T) {
	candidates := []models.Product{
		product("Jahody"),
		product("Jablka"),
		product("Jogurt jahodový"),
	}

	first := titles(Search(candidates, "ja", DefaultMaxResults, DefaultMinChars))
	for i := 0; i < 5; i++ {
		again := titles(Search(candidates, "ja", DefaultMaxResults, DefaultMinChars))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestSearchDoesNotMutateCandidates(t *testing.T) {
	candidates := []models.Product{product("Jahody"), product("Jablka")}
	before := make([]models.Product, len(candidates))
	copy(before, candidates)

	Search(candidates, "ja", DefaultMaxResults, DefaultMinChars)

	if !reflect.DeepEqual(candidates, before) {
		t.Error("candidate slice was mutated")
	}
}

func TestFilterByTitle(t *testing.T) {
	candidates := []models.Product{
		product("Bílý jogurt"),
		product("Chléb"),
		product("Jogurt borůvkový"),
	}

	got := FilterByTitle(candidates, "jogurt")
	want := []int{0, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterByTitle = %v, want %v", got, want)
	}
}

func TestFilterByTitleNoCap(t *testing.T) {
	var candidates []models.Product
	for i := 0; i < 25; i++ {
		candidates = append(candidates, product("Mouka"))
	}

	if got := FilterByTitle(candidates, "mouka"); len(got) != 25 {
		t.Errorf("visible count = %d, want 25", len(got))
	}
}
