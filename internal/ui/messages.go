package ui

import (
	"time"

	"recsel/internal/domain"
)

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// pageLoadedMsg carries a fetched page back into the update loop
type pageLoadedMsg struct {
	seq  uint64
	page domain.Page
}

// fetchFailedMsg carries a failed fetch back into the update loop
type fetchFailedMsg struct {
	seq        uint64
	pageNumber int
	pageSize   int
	err        error
}

// clearStatusMsg expires a transient status bar message
type clearStatusMsg struct {
	id int
}

// pagerClosedMsg signals that the external pager has exited
type pagerClosedMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
