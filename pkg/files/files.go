package files

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalogo/katalogo-cli/pkg/models"
	"github.com/katalogo/katalogo-cli/pkg/search"
)

const (
	ContentDir   = "content"
	ProductsDir  = "products"
	IndexFile    = "products-index.json"
	SettingsFile = "katalogo.yaml"

	// URLPrefix is the fixed path prefix of every product URL.
	URLPrefix = "/cs/katalog/"
)

// frontMatter is the YAML header of one product content file. Title,
// category and slug are required for a record to be emitted.
type frontMatter struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Slug     string   `yaml:"slug"`
	Labels   []string `yaml:"labels"`
}

// ReadProduct parses a product content file into a record. Files
// missing any of the required fields return (nil, nil): they are not an
// error, they are just not indexed.
func ReadProduct(path string) (*models.Product, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product %s: %w", path, err)
	}

	fm, body, err := parseFrontMatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product %s: %w", path, err)
	}

	if fm.Title == "" || fm.Category == "" || fm.Slug == "" {
		return nil, nil
	}

	return &models.Product{
		Title:       fm.Title,
		URL:         ProductURL(fm.Category, fm.Slug),
		Category:    fm.Category,
		Labels:      fm.Labels,
		Description: strings.TrimSpace(body),
	}, nil
}

// ProductURL derives the canonical product URL: the fixed prefix, the
// slugified category and the item slug.
func ProductURL(category, slug string) string {
	return URLPrefix + search.Slugify(category) + "/" + slug + "/"
}

// parseFrontMatter splits a markdown document into its YAML front
// matter and body. The front matter must open the file with a "---"
// line and be closed by another.
func parseFrontMatter(content []byte) (*frontMatter, string, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, "", fmt.Errorf("missing front matter delimiter")
	}

	rest := strings.TrimPrefix(text, "---\n")
	var header, body string
	if end := strings.Index(rest, "\n---\n"); end >= 0 {
		header = rest[:end]
		body = rest[end+len("\n---\n"):]
	} else if strings.HasSuffix(rest, "\n---") {
		header = strings.TrimSuffix(rest, "\n---")
	} else {
		return nil, "", fmt.Errorf("unterminated front matter")
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, "", fmt.Errorf("invalid front matter YAML: %w", err)
	}
	return &fm, body, nil
}
