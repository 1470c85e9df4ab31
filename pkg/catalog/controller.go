package catalog

import (
	"unicode/utf8"

	"github.com/katalogo/katalogo-cli/pkg/models"
	"github.com/katalogo/katalogo-cli/pkg/search"
)

// Action tells the presentation layer what a controller event resolved
// to.
type Action int

const (
	// ActionNone means the event only changed dropdown state.
	ActionNone Action = iota
	// ActionNavigate means the user selected a suggestion; Result.URL
	// is the destination. Terminal for the current view.
	ActionNavigate
	// ActionCommit means the query was committed; the coordinator has
	// already entered committed-search mode.
	ActionCommit
)

// Result is the outcome of a controller event.
type Result struct {
	Action Action
	URL    string
}

// Controller owns the autocomplete dropdown for one search input: the
// open/closed state, the keyboard focus index and the current ranked
// suggestions. Ranking itself is delegated to the search engine. All
// transitions run synchronously inside discrete input events.
type Controller struct {
	coordinator *Coordinator

	records    []models.Product
	maxResults int
	minChars   int

	query       string
	open        bool
	focused     int
	results     []search.Match
	noResults   bool
	disabled    bool
	disabledMsg string
}

// NewController creates a closed controller. Records arrive via
// SetRecords (synchronously for the category scope, after the index
// load for the catalog scope).
func NewController(maxResults, minChars int) *Controller {
	return &Controller{
		maxResults: maxResults,
		minChars:   minChars,
		focused:    -1,
	}
}

// SetRecords installs the candidate set. Called exactly once per page
// load; the slice is treated as read-only afterwards.
func (c *Controller) SetRecords(records []models.Product) {
	c.records = records
}

// Disable permanently disables the input with a user-visible message.
// Used when the index load fails; there is no retry.
func (c *Controller) Disable(msg string) {
	c.disabled = true
	c.disabledMsg = msg
	c.close()
}

// Disabled reports whether the input is disabled.
func (c *Controller) Disabled() bool { return c.disabled }

// DisabledMessage returns the localized unavailable-message.
func (c *Controller) DisabledMessage() string { return c.disabledMsg }

// Input handles a change of the input value. An emptied input closes
// the dropdown and always returns the scope to Browse; otherwise the
// suggestions are recomputed from scratch (the prior query is
// discarded).
func (c *Controller) Input(raw string) {
	if c.disabled {
		return
	}
	c.query = raw

	if utf8.RuneCountInString(search.Normalize(raw)) == 0 {
		c.close()
		if c.coordinator != nil {
			c.coordinator.ExitSearch()
		}
		return
	}

	if utf8.RuneCountInString(search.Normalize(raw)) < c.minChars {
		c.close()
		return
	}

	results := search.Search(c.records, raw, c.maxResults, c.minChars)
	if len(results) == 0 {
		c.close()
		c.noResults = true
		return
	}

	c.results = results
	c.noResults = false
	c.open = true
	c.focused = -1
}

// MoveDown moves the focus down, wrapping to the first suggestion.
func (c *Controller) MoveDown() {
	if !c.open {
		return
	}
	if c.focused < len(c.results)-1 {
		c.focused++
	} else {
		c.focused = 0
	}
}

// MoveUp moves the focus up, wrapping to the last suggestion.
func (c *Controller) MoveUp() {
	if !c.open {
		return
	}
	if c.focused > 0 {
		c.focused--
	} else {
		c.focused = len(c.results) - 1
	}
}

// Enter resolves the Enter key. With an open dropdown and a focused
// suggestion it navigates; with a closed dropdown and a long-enough
// query it commits the search instead.
func (c *Controller) Enter() Result {
	if c.disabled {
		return Result{Action: ActionNone}
	}

	if c.open {
		if c.focused >= 0 && c.focused < len(c.results) {
			return Result{Action: ActionNavigate, URL: c.results[c.focused].Product.URL}
		}
		return Result{Action: ActionNone}
	}

	if utf8.RuneCountInString(search.Normalize(c.query)) >= c.minChars {
		if c.coordinator != nil {
			c.coordinator.CommitSearch(c.query)
		}
		return Result{Action: ActionCommit}
	}
	return Result{Action: ActionNone}
}

// Escape closes the dropdown (input focus removal is up to the caller).
func (c *Controller) Escape() {
	c.close()
}

// ClickOutside closes the dropdown when the pointer lands outside the
// input, the dropdown and the trigger button.
func (c *Controller) ClickOutside() {
	c.close()
}

// ClickResult resolves a pointer click on the i-th rendered suggestion.
func (c *Controller) ClickResult(i int) (string, bool) {
	if !c.open || i < 0 || i >= len(c.results) {
		return "", false
	}
	return c.results[i].Product.URL, true
}

// Open reports whether the dropdown is shown.
func (c *Controller) Open() bool { return c.open }

// FocusedIndex returns the keyboard focus index, -1 for none.
func (c *Controller) FocusedIndex() int { return c.focused }

// Results returns the current ranked suggestions.
func (c *Controller) Results() []search.Match { return c.results }

// NoResults reports whether the distinct no-results indicator should be
// shown instead of the dropdown.
func (c *Controller) NoResults() bool { return c.noResults }

// Query returns the raw input value as last seen.
func (c *Controller) Query() string { return c.query }

func (c *Controller) close() {
	c.open = false
	c.focused = -1
	c.results = nil
	c.noResults = false
}

// resetToBrowse clears the input and closes the dropdown. Invoked
// through the coordinator when label interaction cancels a search.
func (c *Controller) resetToBrowse() {
	c.query = ""
	c.close()
}
