package files

import (
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Search.MaxResults != 10 || settings.Search.MinChars != 1 {
		t.Errorf("defaults not applied: %+v", settings.Search)
	}
	if settings.UI.ProductView != "grid" {
		t.Errorf("product view = %q, want grid", settings.UI.ProductView)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	writeFile(t, path, "search:\n  max_results: 5\n")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Search.MaxResults != 5 {
		t.Errorf("max results = %d, want 5", settings.Search.MaxResults)
	}
	if settings.Search.MinChars != 1 {
		t.Errorf("min chars = %d, unset fields must keep defaults", settings.Search.MinChars)
	}
}

func TestLoadSettingsClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	writeFile(t, path, "search:\n  max_results: -3\n  min_chars: 0\n")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Search.MaxResults != 10 {
		t.Errorf("max results = %d, want default 10", settings.Search.MaxResults)
	}
	if settings.Search.MinChars != 1 {
		t.Errorf("min chars = %d, want default 1", settings.Search.MinChars)
	}
}

func TestSettingsRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)

	original, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	original.Search.MaxResults = 7
	original.UI.ProductView = "list"

	if err := SaveSettings(path, original); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.Search.MaxResults != 7 || loaded.UI.ProductView != "list" {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	writeFile(t, path, "search: [broken\n")

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected an error for invalid YAML")
	}
}
