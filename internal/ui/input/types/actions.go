package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type PageChangeAction struct {
	Delta int // +1 for next page, -1 for previous
}

func (a PageChangeAction) Type() string { return "page_change" }

type GoToPageAction struct {
	Page int // 1-based
}

func (a GoToPageAction) Type() string { return "go_to_page" }

type CyclePageSizeAction struct{}

func (a CyclePageSizeAction) Type() string { return "cycle_page_size" }

// Selection actions
type ToggleSelectAction struct {
	Index int // -1 for current
}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

type BulkSelectAction struct {
	Count int // how many records to select from the cursorward stream
}

func (a BulkSelectAction) Type() string { return "bulk_select" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ReviewSelectionAction struct{}

func (a ReviewSelectionAction) Type() string { return "review_selection" }

type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
