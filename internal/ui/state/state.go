package state

import (
	"recsel/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Page data
	Records      []domain.Record // records on the current page, in source order
	Loaded       bool            // at least one page has been applied
	Fetching     bool            // a fetch is in flight
	FetchingPage int             // page the in-flight fetch is for

	// Cursor state
	Cursor int // index of the highlighted record on the current page

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the record list
	ShowInfo       bool
	InfoContent    string
	StatusMessage  string // status bar message
	StatusIsError  bool   // render the status message in the error style
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Records:        make([]domain.Record, 0),
		ViewportHeight: 20, // Default
	}
}

// Page operations

// SetRecords replaces the visible page and keeps the cursor in bounds
func (s *AppState) SetRecords(records []domain.Record) {
	s.Records = records
	if s.Cursor >= len(records) {
		s.Cursor = len(records) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	s.EnsureCursorVisible()
}

// CurrentRecord returns the record under the cursor
func (s *AppState) CurrentRecord() (domain.Record, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Records) {
		return domain.Record{}, false
	}
	return s.Records[s.Cursor], true
}

// Cursor operations

// MoveCursor moves the cursor by delta, clamped to the current page
func (s *AppState) MoveCursor(delta int) {
	s.Cursor += delta
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Records) {
		s.Cursor = len(s.Records) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	s.EnsureCursorVisible()
}

// CursorHome moves the cursor to the first record on the page
func (s *AppState) CursorHome() {
	s.Cursor = 0
	s.ViewportOffset = 0
}

// CursorEnd moves the cursor to the last record on the page
func (s *AppState) CursorEnd() {
	if len(s.Records) > 0 {
		s.Cursor = len(s.Records) - 1
	}
	s.EnsureCursorVisible()
}

// EnsureCursorVisible scrolls the viewport so the cursor stays on screen
func (s *AppState) EnsureCursorVisible() {
	if s.ViewportHeight <= 0 {
		return
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if s.Cursor >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.Cursor - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// Status operations

// SetStatus sets the status bar message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
