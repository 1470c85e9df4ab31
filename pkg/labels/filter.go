// Package labels implements set-membership label filtering for one
// catalog scope. An item is visible when no filters are active or when
// its labels intersect the active set (OR semantics).
package labels

import "strings"

// Engine owns the active filter set for a single page scope. The set is
// an ordered sequence (insertion order preserved for UI state restore),
// unique by value, and is mutated only through Toggle, ClearAll,
// SetActive and Reset.
type Engine struct {
	active     []string
	resetHooks []func()
}

// NewEngine creates an empty filter engine.
func NewEngine() *Engine {
	return &Engine{}
}

// OnSearchReset registers a hook that cancels an active search. Hooks
// run before any Toggle or ClearAll mutation so that label interaction
// always wins over an active search, regardless of click order.
func (e *Engine) OnSearchReset(hook func()) {
	e.resetHooks = append(e.resetHooks, hook)
}

func (e *Engine) fireResetHooks() {
	for _, hook := range e.resetHooks {
		hook()
	}
}

// Toggle adds the label to the active set, or removes it when already
// active. Any committed search is cancelled first.
func (e *Engine) Toggle(label string) {
	e.fireResetHooks()

	for i, l := range e.active {
		if l == label {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
	e.active = append(e.active, label)
}

// ClearAll empties the active set. Like Toggle it first cancels any
// active search on the page. Calling it twice in a row is a no-op the
// second time.
func (e *Engine) ClearAll() {
	e.fireResetHooks()
	e.active = nil
}

// Reset empties the active set without firing the search-reset hooks.
// This is the entry point for a search commit clearing filters: going
// through ClearAll would recurse into the search controller that is
// mid-commit.
func (e *Engine) Reset() {
	e.active = nil
}

// SetActive replaces the active set, preserving the given order and
// dropping duplicates. Hooks are not fired; this restores UI state.
func (e *Engine) SetActive(lbls []string) {
	seen := make(map[string]bool, len(lbls))
	e.active = nil
	for _, l := range lbls {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		e.active = append(e.active, l)
	}
}

// Active returns a copy of the active filter set in insertion order.
func (e *Engine) Active() []string {
	out := make([]string, len(e.active))
	copy(out, e.active)
	return out
}

// IsActive reports whether the label is currently toggled on.
func (e *Engine) IsActive(label string) bool {
	for _, l := range e.active {
		if l == label {
			return true
		}
	}
	return false
}

// Empty reports whether no filters are active.
func (e *Engine) Empty() bool {
	return len(e.active) == 0
}

// Visible reports whether an item with the given labels passes the
// filter: true when the active set is empty or when any item label is
// in the active set.
func (e *Engine) Visible(itemLabels []string) bool {
	if len(e.active) == 0 {
		return true
	}
	for _, want := range e.active {
		for _, l := range itemLabels {
			if l == want {
				return true
			}
		}
	}
	return false
}

// ParseList splits a comma-separated label attribute into individual
// labels. Missing or empty metadata means no labels.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
