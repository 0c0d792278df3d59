// Package bulkselect accumulates a select-the-next-N run across page
// fetches.
package bulkselect

import (
	"github.com/rs/zerolog"

	"recsel/internal/domain"
	"recsel/internal/eventbus"
	"recsel/internal/logging"
	"recsel/internal/ui/services/selection"
)

// Service walks arriving pages and fills the selection until the requested
// count is reached or the catalog runs out of pages
type Service struct {
	state     *State
	selection *selection.Service
	bus       eventbus.EventBus
	log       zerolog.Logger
}

// NewService creates an idle bulk select service
func NewService(sel *selection.Service, bus eventbus.EventBus) *Service {
	return &Service{
		state:     &State{},
		selection: sel,
		bus:       bus,
		log:       logging.NewLogger("bulkselect"),
	}
}

// Active reports whether a run is in progress
func (s *Service) Active() bool {
	return s.state.Remaining > 0
}

// Remaining returns how many records the run still wants
func (s *Service) Remaining() int {
	return s.state.Remaining
}

// Start begins a run for n records. n <= 0 is ignored. Starting during an
// active run replaces the outstanding count outright.
func (s *Service) Start(n int) bool {
	if n <= 0 {
		return false
	}

	if s.state.Remaining > 0 {
		s.log.Debug().Int("previous", s.state.Remaining).Int("target", n).Msg("superseding active run")
	}
	s.state.Remaining = n
	s.state.Requested = n
	s.state.Picked = 0

	if s.bus != nil {
		s.bus.Publish(eventbus.BulkSelectStartedEvent{Target: n})
	}
	return true
}

// OnPageArrived consumes one applied page: items are selected in source
// order, skipping already-selected records, until the run is satisfied.
// currentPage is the page the pagination state sits on.
func (s *Service) OnPageArrived(page *domain.Page, currentPage int) Outcome {
	if s.state.Remaining <= 0 {
		return Outcome{}
	}

	justSelected := 0
	for _, rec := range page.Items {
		if justSelected == s.state.Remaining {
			break
		}
		if s.selection.Add(rec) {
			justSelected++
		}
	}

	s.state.Remaining -= justSelected
	s.state.Picked += justSelected

	out := Outcome{Selected: justSelected}
	switch {
	case s.state.Remaining <= 0:
		out.Done = true
	case currentPage < page.TotalPages:
		out.Advance = true
	default:
		// Out of pages with the run unsatisfied: stop quietly with the
		// partial selection in place
		out.Done = true
		out.Exhausted = true
	}

	s.log.Debug().
		Int("page", page.PageNumber).
		Int("selected", justSelected).
		Int("remaining", s.state.Remaining).
		Bool("advance", out.Advance).
		Msg("page consumed")

	if out.Done {
		s.finish(out.Exhausted)
	}
	return out
}

// finish returns the run to idle and publishes the summary event
func (s *Service) finish(exhausted bool) {
	if s.bus != nil {
		s.bus.Publish(eventbus.BulkSelectFinishedEvent{
			Requested: s.state.Requested,
			Selected:  s.state.Picked,
			Exhausted: exhausted,
		})
	}
	s.state.Remaining = 0
	s.state.Requested = 0
	s.state.Picked = 0
}
