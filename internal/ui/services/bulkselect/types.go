package bulkselect

// State holds the select-next run. Remaining is zero when idle.
type State struct {
	Remaining int
	Requested int // size of the current run
	Picked    int // records selected so far in this run
}

// Outcome reports what applying a page did to the run.
type Outcome struct {
	Selected  int  // records newly selected from this page
	Done      bool // run returned to idle
	Exhausted bool // idle because the catalog ran out of pages
	Advance   bool // caller should advance to the next page and fetch it
}
