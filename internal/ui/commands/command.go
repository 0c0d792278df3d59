package commands

import (
	"fmt"

	"recsel/internal/config"
	"recsel/internal/domain"
	"recsel/internal/eventbus"
	"recsel/internal/ui/services/bulkselect"
	"recsel/internal/ui/services/pagination"
	"recsel/internal/ui/services/selection"
	"recsel/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() Result
}

// Result reports what the caller owes after a command runs. The model
// issues fetches itself so it can tag them with a fresh sequence number.
type Result struct {
	FetchPage int // 1-based page to fetch, 0 when no fetch is owed
}

// CommandContext provides context for command execution
type CommandContext struct {
	State      *state.AppState
	Bus        eventbus.EventBus
	Pagination *pagination.Service
	Selection  *selection.Service
	Bulk       *bulkselect.Service
}

// currentPage rebuilds the displayed page from state and pagination totals.
func (ctx *CommandContext) currentPage() domain.Page {
	return domain.Page{
		Items:        ctx.State.Records,
		PageNumber:   ctx.Pagination.CurrentPage(),
		PageSize:     ctx.Pagination.PageSize(),
		TotalRecords: ctx.Pagination.TotalRecords(),
		TotalPages:   ctx.Pagination.TotalPages(),
	}
}

// ToggleSelectionCommand toggles selection of one record on the page
type ToggleSelectionCommand struct {
	ctx   *CommandContext
	index int // -1 means the record under the cursor
}

// NewToggleSelectionCommand creates a new toggle selection command
func NewToggleSelectionCommand(ctx *CommandContext, index int) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{
		ctx:   ctx,
		index: index,
	}
}

// Execute toggles the selection
func (c *ToggleSelectionCommand) Execute() Result {
	idx := c.index
	if idx < 0 {
		idx = c.ctx.State.Cursor
	}
	if idx < 0 || idx >= len(c.ctx.State.Records) {
		return Result{}
	}
	c.ctx.Selection.Toggle(c.ctx.State.Records[idx])
	return Result{}
}

// ToggleAllCommand toggles selection of every record on the page
type ToggleAllCommand struct {
	ctx *CommandContext
}

// NewToggleAllCommand creates a new toggle all command
func NewToggleAllCommand(ctx *CommandContext) *ToggleAllCommand {
	return &ToggleAllCommand{ctx: ctx}
}

// Execute toggles all records on the current page
func (c *ToggleAllCommand) Execute() Result {
	c.ctx.Selection.ToggleAllOnPage(c.ctx.State.Records)
	return Result{}
}

// ClearSelectionCommand empties the selection set
type ClearSelectionCommand struct {
	ctx *CommandContext
}

// NewClearSelectionCommand creates a new clear selection command
func NewClearSelectionCommand(ctx *CommandContext) *ClearSelectionCommand {
	return &ClearSelectionCommand{ctx: ctx}
}

// Execute clears the selection
func (c *ClearSelectionCommand) Execute() Result {
	if n := c.ctx.Selection.Clear(); n > 0 {
		c.ctx.State.SetStatus(fmt.Sprintf("Cleared %d selected", n), false)
	}
	return Result{}
}

// StartBulkSelectCommand starts selecting the next N records
type StartBulkSelectCommand struct {
	ctx   *CommandContext
	count int
}

// NewStartBulkSelectCommand creates a new bulk select command
func NewStartBulkSelectCommand(ctx *CommandContext, count int) *StartBulkSelectCommand {
	return &StartBulkSelectCommand{
		ctx:   ctx,
		count: count,
	}
}

// Execute starts the run and consumes the page already on screen.
// With no page applied yet the run stays armed; the next arriving
// page resumes it through the model's page-loaded path.
func (c *StartBulkSelectCommand) Execute() Result {
	if !c.ctx.Bulk.Start(c.count) {
		return Result{}
	}
	if !c.ctx.State.Loaded {
		return Result{}
	}
	page := c.ctx.currentPage()
	out := c.ctx.Bulk.OnPageArrived(&page, c.ctx.Pagination.CurrentPage())
	if out.Advance {
		c.ctx.Pagination.AdvancePage()
		return Result{FetchPage: c.ctx.Pagination.CurrentPage()}
	}
	return Result{}
}

// GoToPageCommand jumps to an absolute page number
type GoToPageCommand struct {
	ctx  *CommandContext
	page int
}

// NewGoToPageCommand creates a new go to page command
func NewGoToPageCommand(ctx *CommandContext, page int) *GoToPageCommand {
	return &GoToPageCommand{
		ctx:  ctx,
		page: page,
	}
}

// Execute requests the page change; out-of-range targets are dropped silently
func (c *GoToPageCommand) Execute() Result {
	size := c.ctx.Pagination.PageSize()
	if c.ctx.Pagination.RequestPageChange((c.page-1)*size, size) {
		return Result{FetchPage: c.ctx.Pagination.CurrentPage()}
	}
	return Result{}
}

// StepPageCommand moves forward or back by whole pages
type StepPageCommand struct {
	ctx   *CommandContext
	delta int
}

// NewStepPageCommand creates a new step page command
func NewStepPageCommand(ctx *CommandContext, delta int) *StepPageCommand {
	return &StepPageCommand{
		ctx:   ctx,
		delta: delta,
	}
}

// Execute requests the page change; stepping past either end is dropped silently
func (c *StepPageCommand) Execute() Result {
	size := c.ctx.Pagination.PageSize()
	offset := c.ctx.Pagination.Offset() + c.delta*size
	if c.ctx.Pagination.RequestPageChange(offset, size) {
		return Result{FetchPage: c.ctx.Pagination.CurrentPage()}
	}
	return Result{}
}

// CyclePageSizeCommand cycles the page size through the configured steps
type CyclePageSizeCommand struct {
	ctx *CommandContext
}

// NewCyclePageSizeCommand creates a new cycle page size command
func NewCyclePageSizeCommand(ctx *CommandContext) *CyclePageSizeCommand {
	return &CyclePageSizeCommand{ctx: ctx}
}

// Execute switches to the next page size. The offset is passed through
// unchanged, so the resulting page is whichever one now contains it.
func (c *CyclePageSizeCommand) Execute() Result {
	from := c.ctx.Pagination.PageSize()
	to := config.NextPageSize(from)
	if !c.ctx.Pagination.RequestPageChange(c.ctx.Pagination.Offset(), to) {
		return Result{}
	}
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.PageSizeChangedEvent{From: from, To: to})
	}
	return Result{FetchPage: c.ctx.Pagination.CurrentPage()}
}

// RefreshCommand re-fetches the current page
type RefreshCommand struct {
	ctx *CommandContext
}

// NewRefreshCommand creates a new refresh command
func NewRefreshCommand(ctx *CommandContext) *RefreshCommand {
	return &RefreshCommand{ctx: ctx}
}

// Execute asks for the current page again. This skips the bounds check so
// retrying works before any page has loaded, when total pages is still zero.
func (c *RefreshCommand) Execute() Result {
	return Result{FetchPage: c.ctx.Pagination.CurrentPage()}
}
