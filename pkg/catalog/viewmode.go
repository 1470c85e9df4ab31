// Package catalog coordinates incremental search and label filtering
// for one catalog scope. The autocomplete Controller owns the dropdown
// state machine; the Coordinator keeps exactly one view mode active and
// mediates the mutual override between committed search and label
// filters.
package catalog

// ViewMode is the mutually-exclusive display mode of a scope. Exactly
// one mode is active at any time.
type ViewMode int

const (
	// ModeBrowse is the rest state: no committed query, no active
	// filters.
	ModeBrowse ViewMode = iota
	// ModeCommittedSearch shows only products whose title contains the
	// committed query.
	ModeCommittedSearch
	// ModeLabelFiltered shows only products matching at least one
	// active label.
	ModeLabelFiltered
)

func (m ViewMode) String() string {
	switch m {
	case ModeCommittedSearch:
		return "search"
	case ModeLabelFiltered:
		return "filtered"
	default:
		return "browse"
	}
}

// Scope distinguishes the two deployment scopes. Both follow the same
// state contract; only the candidate source and presentation differ.
type Scope int

const (
	// ScopeCatalog searches the whole catalog; records arrive from the
	// asynchronously loaded index.
	ScopeCatalog Scope = iota
	// ScopeCategory searches a single category; records are snapshotted
	// once from the category's grid at initialization.
	ScopeCategory
)

// BrowseResetter is the capability a search scope exposes so other
// controllers can cancel its active search without reaching into its
// internals (no ambient globals).
type BrowseResetter interface {
	ResetToBrowse()
}
