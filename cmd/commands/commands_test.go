package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalogo/katalogo-cli/pkg/files"
	"github.com/katalogo/katalogo-cli/pkg/models"
)

func writeProductFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, files.ContentDir, files.ProductsDir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writeTestIndex(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, files.IndexFile)
	require.NoError(t, files.WriteIndex(path, []models.Product{
		{Title: "Jablka", URL: "/cs/katalog/ovoce/jablka/", Category: "Ovoce", Labels: []string{"Bio"}},
		{Title: "Jahody", URL: "/cs/katalog/ovoce/jahody/", Category: "Ovoce", Labels: []string{"Novinka", "Bio"}},
		{Title: "Chléb", URL: "/cs/katalog/pecivo/chleb/", Category: "Pečivo"},
	}))
	return path
}

// captureStdout runs fn with os.Stdout redirected and returns what it
// printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestIndexCommand(t *testing.T) {
	root := t.TempDir()
	writeProductFile(t, root, "ovoce/jablka.md", `---
title: Jablka
category: Ovoce
slug: jablka
labels: [Bio]
---
Křupavá jablka.
`)
	writeProductFile(t, root, "draft.md", `---
title: Bez slugu
---
`)

	outPath := filepath.Join(t.TempDir(), "products-index.json")

	cmd := NewIndexCommand()
	cmd.SetArgs([]string{root, "--output", outPath})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})
	assert.Contains(t, out, "1 products")

	index, err := files.ReadIndex(outPath)
	require.NoError(t, err)
	require.Len(t, index, 1)
	assert.Equal(t, "Jablka", index[0].Title)
	assert.Equal(t, "/cs/katalog/ovoce/jablka/", index[0].URL)
	assert.Equal(t, []string{"Bio"}, index[0].Labels)
}

func TestSearchCommandJSON(t *testing.T) {
	indexPath := writeTestIndex(t, t.TempDir())

	cmd := NewSearchCommand()
	cmd.SetArgs([]string{"ja", "--index", indexPath, "--format", "json"})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})

	var result SearchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "ja", result.Query)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "Jablka", result.Results[0].Title)
	assert.Equal(t, "Jahody", result.Results[1].Title)
	assert.Equal(t, 1.0, result.Results[0].Score)
}

func TestSearchCommandDiacriticInsensitive(t *testing.T) {
	indexPath := writeTestIndex(t, t.TempDir())

	cmd := NewSearchCommand()
	cmd.SetArgs([]string{"chleb", "--index", indexPath, "--format", "json"})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})

	var result SearchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Chléb", result.Results[0].Title)
}

func TestSearchCommandNoResults(t *testing.T) {
	indexPath := writeTestIndex(t, t.TempDir())

	cmd := NewSearchCommand()
	cmd.SetArgs([]string{"banán", "--index", indexPath, "--format", "text"})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})
	assert.Contains(t, out, "No results")
}

func TestSearchCommandMissingIndex(t *testing.T) {
	cmd := NewSearchCommand()
	cmd.SetArgs([]string{"ja", "--index", filepath.Join(t.TempDir(), "missing.json")})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.Error(t, cmd.Execute())
}

func TestLabelsCommand(t *testing.T) {
	indexPath := writeTestIndex(t, t.TempDir())

	cmd := NewLabelsCommand()
	cmd.SetArgs([]string{"--index", indexPath, "--format", "json"})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})

	var result LabelsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Labels, 2)
	assert.Equal(t, LabelCount{Label: "Bio", Count: 2}, result.Labels[0])
	assert.Equal(t, LabelCount{Label: "Novinka", Count: 1}, result.Labels[1])
}
