package catalog

import (
	"github.com/katalogo/katalogo-cli/pkg/labels"
	"github.com/katalogo/katalogo-cli/pkg/models"
	"github.com/katalogo/katalogo-cli/pkg/search"
)

var _ BrowseResetter = (*Coordinator)(nil)

// Coordinator owns the view mode of one scope and mediates between the
// autocomplete controller and the label filter engine so that exactly
// one of committed search and label filtering is ever active:
// committing a search clears the filters, toggling a label cancels the
// search. One instance per page scope; all transitions run to
// completion inside a single event.
type Coordinator struct {
	scope      Scope
	records    []models.Product
	filters    *labels.Engine
	controller *Controller

	mode    ViewMode
	query   string // committed query, empty outside ModeCommittedSearch
	visible []int  // nil means all records are visible
}

// NewCoordinator wires a scope together. The controller is attached to
// the coordinator and the coordinator registers itself with the filter
// engine as the search-reset hook, replacing ambient global lookups.
// Records may be empty for the catalog scope until the index loads.
func NewCoordinator(scope Scope, records []models.Product, filters *labels.Engine, controller *Controller) *Coordinator {
	v := &Coordinator{
		scope:      scope,
		records:    records,
		filters:    filters,
		controller: controller,
	}
	controller.coordinator = v
	controller.SetRecords(records)
	filters.OnSearchReset(v.ResetToBrowse)
	return v
}

// SetRecords installs the record snapshot once the asynchronous index
// load completes (catalog scope). Read-only afterwards.
func (v *Coordinator) SetRecords(records []models.Product) {
	v.records = records
	v.controller.SetRecords(records)
}

// Scope returns the deployment scope.
func (v *Coordinator) Scope() Scope { return v.scope }

// Mode returns the active view mode.
func (v *Coordinator) Mode() ViewMode { return v.mode }

// CommittedQuery returns the committed search query, empty outside
// committed-search mode.
func (v *Coordinator) CommittedQuery() string { return v.query }

// Records returns the scope's record snapshot.
func (v *Coordinator) Records() []models.Product { return v.records }

// Total returns the total item count of the scope.
func (v *Coordinator) Total() int { return len(v.records) }

// VisibleIndexes returns the indexes of currently visible records.
func (v *Coordinator) VisibleIndexes() []int {
	if v.visible == nil {
		all := make([]int, len(v.records))
		for i := range v.records {
			all[i] = i
		}
		return all
	}
	return v.visible
}

// VisibleCount returns the number of currently visible records, for
// the results counter.
func (v *Coordinator) VisibleCount() int {
	if v.visible == nil {
		return len(v.records)
	}
	return len(v.visible)
}

// CommitSearch enters committed-search mode: active label filters are
// reset directly (not via ClearAll, which would fire the search-reset
// hooks back into this commit), the visible set is recomputed by plain
// substring containment on titles, and the mode switches.
func (v *Coordinator) CommitSearch(rawQuery string) {
	v.filters.Reset()
	v.query = rawQuery
	v.visible = search.FilterByTitle(v.records, rawQuery)
	v.mode = ModeCommittedSearch
}

// ExitSearch leaves committed-search mode: the committed query is
// dropped and the view returns to Browse, or to the label-filtered view
// when filters are still active (clearing the box never silently drops
// filter state).
func (v *Coordinator) ExitSearch() {
	v.query = ""
	if v.filters.Empty() {
		v.mode = ModeBrowse
		v.visible = nil
		return
	}
	v.applyFilters()
}

// ToggleLabel is the label chip entry point. The filter engine fires
// the search-reset hooks first, so label interaction always wins over
// an active search regardless of click order.
func (v *Coordinator) ToggleLabel(label string) {
	v.filters.Toggle(label)
	v.applyFilters()
}

// ClearFilters is the "show everything" chip: it clears the labels and,
// through the engine's hooks, any active search on the page.
func (v *Coordinator) ClearFilters() {
	v.filters.ClearAll()
	v.applyFilters()
}

// RestoreFilters replaces the active label set (UI state restore) and
// recomputes the view.
func (v *Coordinator) RestoreFilters(lbls []string) {
	v.filters.SetActive(lbls)
	v.applyFilters()
}

// ActiveFilters returns the active label set in insertion order.
func (v *Coordinator) ActiveFilters() []string {
	return v.filters.Active()
}

// ResetToBrowse cancels any committed search: the input is cleared, the
// dropdown closed and the full record set made visible. Exposed as the
// capability other controllers use to cancel this scope's search.
func (v *Coordinator) ResetToBrowse() {
	if v.controller != nil {
		v.controller.resetToBrowse()
	}
	v.query = ""
	v.visible = nil
	v.mode = ModeBrowse
}

func (v *Coordinator) applyFilters() {
	if v.filters.Empty() {
		v.mode = ModeBrowse
		v.visible = nil
		return
	}
	visible := make([]int, 0, len(v.records))
	for i, r := range v.records {
		if v.filters.Visible(r.Labels) {
			visible = append(visible, i)
		}
	}
	v.visible = visible
	v.mode = ModeLabelFiltered
}
