package files

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalogo/katalogo-cli/pkg/models"
)

// BuildIndex walks the product content tree under root and collects one
// record per parseable product file. Files missing required front
// matter fields are skipped silently; parse failures produce a warning
// and are skipped — neither is fatal to the build. A missing products
// directory yields an empty index.
func BuildIndex(root string) ([]models.Product, []string, error) {
	productsPath := filepath.Join(root, ContentDir, ProductsDir)
	if _, err := os.Stat(productsPath); os.IsNotExist(err) {
		return []models.Product{}, []string{fmt.Sprintf("products directory not found: %s", productsPath)}, nil
	}

	var products []models.Product
	var warnings []string

	err := filepath.WalkDir(productsPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		product, err := ReadProduct(path)
		if err != nil {
			warnings = append(warnings, err.Error())
			return nil
		}
		if product == nil {
			return nil // required fields missing
		}

		products = append(products, *product)
		return nil
	})
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to walk products directory: %w", err)
	}

	if products == nil {
		products = []models.Product{}
	}
	return products, warnings, nil
}

// WriteIndex writes the index artifact consumed by catalog-scope
// search. Descriptions are not part of the artifact.
func WriteIndex(path string, products []models.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal search index: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create index directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write search index %s: %w", path, err)
	}
	return nil
}

// ReadIndex loads the index artifact. Consumers treat the result as
// read-only and must tolerate an empty sequence.
func ReadIndex(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read search index %s: %w", path, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse search index %s: %w", path, err)
	}
	return products, nil
}

// Categories returns the distinct categories of the given records in
// first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// FilterByCategory returns the records of a single category, preserving
// order. This is the category scope's read-once snapshot.
func FilterByCategory(products []models.Product, category string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
