package commands

import (
	"recsel/internal/eventbus"
	"recsel/internal/ui/services/bulkselect"
	"recsel/internal/ui/services/pagination"
	"recsel/internal/ui/services/selection"
	"recsel/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(st *state.AppState, bus eventbus.EventBus, pag *pagination.Service, sel *selection.Service, bulk *bulkselect.Service) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:      st,
			Bus:        bus,
			Pagination: pag,
			Selection:  sel,
			Bulk:       bulk,
		},
	}
}

// ExecuteToggleSelection creates and executes a toggle selection command
func (e *Executor) ExecuteToggleSelection(index int) Result {
	cmd := NewToggleSelectionCommand(e.ctx, index)
	return cmd.Execute()
}

// ExecuteToggleAll creates and executes a toggle all command
func (e *Executor) ExecuteToggleAll() Result {
	cmd := NewToggleAllCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteClearSelection creates and executes a clear selection command
func (e *Executor) ExecuteClearSelection() Result {
	cmd := NewClearSelectionCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteStartBulkSelect creates and executes a bulk select command
func (e *Executor) ExecuteStartBulkSelect(count int) Result {
	cmd := NewStartBulkSelectCommand(e.ctx, count)
	return cmd.Execute()
}

// ExecuteGoToPage creates and executes a go to page command
func (e *Executor) ExecuteGoToPage(page int) Result {
	cmd := NewGoToPageCommand(e.ctx, page)
	return cmd.Execute()
}

// ExecuteStepPage creates and executes a step page command
func (e *Executor) ExecuteStepPage(delta int) Result {
	cmd := NewStepPageCommand(e.ctx, delta)
	return cmd.Execute()
}

// ExecuteCyclePageSize creates and executes a cycle page size command
func (e *Executor) ExecuteCyclePageSize() Result {
	cmd := NewCyclePageSizeCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteRefresh creates and executes a refresh command
func (e *Executor) ExecuteRefresh() Result {
	cmd := NewRefreshCommand(e.ctx)
	return cmd.Execute()
}
