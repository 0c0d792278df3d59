package input

import (
	"recsel/internal/ui/services/pagination"
	"recsel/internal/ui/services/selection"
	"recsel/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Pagination *pagination.Service
	Selection  *selection.Service
}

// CurrentIndex returns the cursor position on the current page
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor
}

// TotalItems returns the number of records on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.State.Records)
}

// HasSelection returns true if any records are selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection.Count() > 0
}

// SelectedCount returns the number of selected records
func (c *ModelContext) SelectedCount() int {
	return c.Selection.Count()
}

// CurrentPage returns the 1-based page number being displayed
func (c *ModelContext) CurrentPage() int {
	return c.Pagination.CurrentPage()
}

// TotalPages returns the page count from the last applied fetch
func (c *ModelContext) TotalPages() int {
	return c.Pagination.TotalPages()
}
