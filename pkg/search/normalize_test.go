package search

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "diacritics folded",
			input: "Švestková šťáva",
			want:  "svestkova stava",
		},
		{
			name:  "trims and lowercases",
			input: "  Jablka  ",
			want:  "jablka",
		},
		{
			name:  "empty in empty out",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "plain ascii unchanged",
			input: "rohlik 43",
			want:  "rohlik 43",
		},
		{
			name:  "uppercase diacritics",
			input: "ŘEŘICHA",
			want:  "rericha",
		},
		{
			name:  "non-czech accents pass through",
			input: "Müsli Crème",
			want:  "müsli crème",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Švestková šťáva", "  Jablka  ", "Müsli", "žluťoučký kůň"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "diacritics and spaces",
			input: "Mléčné výrobky",
			want:  "mlecne-vyrobky",
		},
		{
			name:  "punctuation collapsed",
			input: "Pečivo & chléb",
			want:  "pecivo-chleb",
		},
		{
			name:  "leading and trailing junk trimmed",
			input: "  --Ovoce--  ",
			want:  "ovoce",
		},
		{
			name:  "digits kept",
			input: "Rohlík 43",
			want:  "rohlik-43",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "***",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompareCzech(t *testing.T) {
	// Czech collation sorts ch after h.
	if CompareCzech("chleba", "cibule") <= 0 {
		t.Error("expected chleba to sort after cibule under Czech collation")
	}
	if CompareCzech("Jablka", "Jablka") != 0 {
		t.Error("expected equal strings to compare equal")
	}
	if CompareCzech("Jablka", "Jahody") >= 0 {
		t.Error("expected Jablka before Jahody")
	}
}
