package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]int{"count": 3}

	if err := OutputResults(&buf, "json", data); err != nil {
		t.Fatalf("OutputResults: %v", err)
	}
	if !strings.Contains(buf.String(), `"count": 3`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestOutputResultsYAML(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"query": "šťáva"}

	if err := OutputResults(&buf, "yaml", data); err != nil {
		t.Fatalf("OutputResults: %v", err)
	}
	if !strings.Contains(buf.String(), "query: šťáva") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestOutputResultsUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputResults(&buf, "xml", nil); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("TITLE", "CATEGORY")
	table.Row("Jablka", "Ovoce")
	table.Flush()

	out := buf.String()
	for _, want := range []string{"TITLE", "CATEGORY", "Jablka", "Ovoce"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a very long product title", 10, "a very ..."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
