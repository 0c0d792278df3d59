package pagination

import (
	"github.com/rs/zerolog"

	"recsel/internal/logging"
)

// ToPage converts a zero-based offset to a 1-based page number. pageSize
// must be positive.
func ToPage(offset, pageSize int) int {
	return offset/pageSize + 1
}

// Service guards pagination state transitions
type Service struct {
	state *State
	log   zerolog.Logger
}

// NewService creates a pagination service starting at offset 0
func NewService(pageSize int) *Service {
	return &Service{
		state: &State{PageSize: pageSize},
		log:   logging.NewLogger("pagination"),
	}
}

// Offset returns the zero-based offset of the current window
func (s *Service) Offset() int {
	return s.state.Offset
}

// PageSize returns the current page size
func (s *Service) PageSize() int {
	return s.state.PageSize
}

// TotalRecords returns the record count from the last applied fetch
func (s *Service) TotalRecords() int {
	return s.state.TotalRecords
}

// TotalPages returns the page count from the last applied fetch
func (s *Service) TotalPages() int {
	return s.state.TotalPages
}

// CurrentPage returns the 1-based page the offset falls on
func (s *Service) CurrentPage() int {
	return ToPage(s.state.Offset, s.state.PageSize)
}

// RequestPageChange applies the offset/size pair only when the resulting
// page exists. A rejected request leaves every field untouched and the
// rejection is silent.
func (s *Service) RequestPageChange(newOffset, newPageSize int) bool {
	if newOffset < 0 || newPageSize < 1 {
		return false
	}

	target := ToPage(newOffset, newPageSize)
	if target < 1 || target > s.state.TotalPages {
		s.log.Debug().
			Int("offset", newOffset).
			Int("page_size", newPageSize).
			Int("target", target).
			Int("total_pages", s.state.TotalPages).
			Msg("page change rejected")
		return false
	}

	s.state.Offset = newOffset
	s.state.PageSize = newPageSize
	return true
}

// AdvancePage moves the offset one window forward without bounds checking.
// Callers verify a next page exists first.
func (s *Service) AdvancePage() int {
	s.state.Offset += s.state.PageSize
	return s.state.Offset
}

// SetTotals records the totals reported by an applied fetch
func (s *Service) SetTotals(totalRecords, totalPages int) {
	s.state.TotalRecords = totalRecords
	s.state.TotalPages = totalPages
}
