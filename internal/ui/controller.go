package ui

import (
	"github.com/plugview/plugview/internal/catalog"
)

// Event is a user intent delivered to the controller. Keyboard and
// mouse handling reduce to these before any view state changes, so the
// whole filter/sort state machine is exercisable without a terminal.
type Event interface {
	isEvent()
}

// SearchTextChanged fires on every keystroke in the search field.
type SearchTextChanged struct{ Text string }

// SearchSubmitted fires when the user presses enter in the search
// field. Reapplying the same query is idempotent.
type SearchSubmitted struct{ Text string }

// ColumnSelected fires when a column header is clicked or its number
// key pressed.
type ColumnSelected struct{ Field catalog.Field }

// ClearSearch resets the query and restores the full dataset. The sort
// field and direction survive a clear.
type ClearSearch struct{}

// FocusSearchRequested moves input focus to the search field. No view
// state changes.
type FocusSearchRequested struct{}

// QuitRequested ends the session.
type QuitRequested struct{}

func (SearchTextChanged) isEvent()    {}
func (SearchSubmitted) isEvent()      {}
func (ColumnSelected) isEvent()       {}
func (ClearSearch) isEvent()          {}
func (FocusSearchRequested) isEvent() {}
func (QuitRequested) isEvent()        {}

// ViewState is the browsing state derived from the dataset: the query,
// the sort settings, and the visible subset they produce. Visible is
// recomputed on every change and never persisted.
type ViewState struct {
	Query      string
	SortField  catalog.Field
	Descending bool
	Visible    []catalog.Record
}

// Controller owns the ViewState and applies events to it. It holds the
// only reference to the Store the view layer ever sees; Visible is
// always a filtered copy, so reordering it cannot touch the dataset.
type Controller struct {
	store *catalog.Store
	state ViewState
}

// NewController builds a controller over the store with the default
// view: no query, sorted by Name ascending.
func NewController(store *catalog.Store) *Controller {
	c := &Controller{store: store}
	c.state.SortField = catalog.FieldName
	c.refilter()
	return c
}

// Apply runs one event through the state machine.
func (c *Controller) Apply(event Event) {
	switch ev := event.(type) {
	case SearchTextChanged:
		c.state.Query = ev.Text
		c.refilter()

	case SearchSubmitted:
		c.state.Query = ev.Text
		c.refilter()

	case ColumnSelected:
		if ev.Field == c.state.SortField {
			c.state.Descending = !c.state.Descending
		} else {
			c.state.SortField = ev.Field
			c.state.Descending = false
		}
		// Sort settings changed but the query did not: re-sort the
		// already-filtered subset without re-filtering.
		c.resort()

	case ClearSearch:
		c.state.Query = ""
		c.state.Visible = c.store.Records()
		c.resort()

	case FocusSearchRequested, QuitRequested:
		// Focus and lifecycle are the shell's concern.
	}
}

func (c *Controller) refilter() {
	c.state.Visible = catalog.Filter(c.store.Records(), c.state.Query)
	c.resort()
}

func (c *Controller) resort() {
	catalog.Sort(c.state.Visible, c.state.SortField, c.state.Descending)
}

// State returns the current view state. The Visible slice is owned by
// the controller; callers render from it but do not modify it.
func (c *Controller) State() ViewState {
	return c.state
}

// Shown returns the number of visible records.
func (c *Controller) Shown() int {
	return len(c.state.Visible)
}

// Total returns the full dataset size.
func (c *Controller) Total() int {
	return c.store.Len()
}
