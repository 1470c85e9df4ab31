package models

// Settings represents the application configuration
type Settings struct {
	Content ContentSettings `yaml:"content"`
	Search  SearchSettings  `yaml:"search"`
	UI      UISettings      `yaml:"ui"`
}

// ContentSettings locates the catalog content tree
type ContentSettings struct {
	Root string `yaml:"root"`
}

// SearchSettings controls suggestion behavior
type SearchSettings struct {
	MaxResults int    `yaml:"max_results"`
	MinChars   int    `yaml:"min_chars"`
	IndexPath  string `yaml:"index_path"`
}

// UISettings controls UI preferences
type UISettings struct {
	ProductView string `yaml:"product_view"` // "grid" or "list"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Content: ContentSettings{
			Root: "content",
		},
		Search: SearchSettings{
			MaxResults: 10,
			MinChars:   1,
			IndexPath:  "products-index.json",
		},
		UI: UISettings{
			ProductView: "grid",
		},
	}
}
