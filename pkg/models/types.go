package models

// Product is one record of the catalog search index. Records are built
// once (from the content tree or from a loaded index artifact) and are
// read-only afterwards.
type Product struct {
	Title    string   `json:"title" yaml:"title"`
	URL      string   `json:"url" yaml:"url"`
	Category string   `json:"category" yaml:"category"`
	Labels   []string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Description is the markdown body of the product file. It is kept
	// out of the index artifact and only populated for viewer display.
	Description string `json:"-" yaml:"-"`
}
