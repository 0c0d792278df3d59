package selection

import (
	"recsel/internal/domain"
	"recsel/internal/eventbus"
)

// Service handles selection logic
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: NewState(),
		bus:   bus,
	}
}

// Toggle flips membership of the record and reports whether it is now
// selected
func (s *Service) Toggle(rec domain.Record) bool {
	if s.state.Selected[rec.ID] {
		s.remove(rec.ID)
		s.publishChanged(rec.ID, false)
		return false
	}

	s.insert(rec)
	s.publishChanged(rec.ID, true)
	return true
}

// Add selects the record and reports whether it was newly added
func (s *Service) Add(rec domain.Record) bool {
	if s.state.Selected[rec.ID] {
		return false
	}

	s.insert(rec)
	s.publishChanged(rec.ID, true)
	return true
}

// ToggleAllOnPage applies the all-or-nothing page toggle: when every item
// is already selected they are all removed, otherwise every unselected
// item is added
func (s *Service) ToggleAllOnPage(items []domain.Record) {
	if len(items) == 0 {
		return
	}

	if s.allSelected(items) {
		for _, rec := range items {
			s.remove(rec.ID)
			s.publishChanged(rec.ID, false)
		}
		return
	}

	for _, rec := range items {
		if !s.state.Selected[rec.ID] {
			s.insert(rec)
			s.publishChanged(rec.ID, true)
		}
	}
}

// Clear drops the whole selection and returns how many records it held
func (s *Service) Clear() int {
	previous := len(s.state.Order)
	if previous == 0 {
		return 0
	}

	s.state.Selected = make(map[int64]bool)
	s.state.ByID = make(map[int64]domain.Record)
	s.state.Order = nil

	if s.bus != nil {
		s.bus.Publish(eventbus.SelectionClearedEvent{Previous: previous})
	}
	return previous
}

// IsSelected checks if a record is selected
func (s *Service) IsSelected(id int64) bool {
	return s.state.Selected[id]
}

// Count returns the selection size
func (s *Service) Count() int {
	return len(s.state.Order)
}

// IDs returns the selected record ids in insertion order
func (s *Service) IDs() []int64 {
	ids := make([]int64, len(s.state.Order))
	copy(ids, s.state.Order)
	return ids
}

// Records returns the selected records in insertion order
func (s *Service) Records() []domain.Record {
	records := make([]domain.Record, 0, len(s.state.Order))
	for _, id := range s.state.Order {
		records = append(records, s.state.ByID[id])
	}
	return records
}

// allSelected reports whether every item is already in the selection
func (s *Service) allSelected(items []domain.Record) bool {
	for _, rec := range items {
		if !s.state.Selected[rec.ID] {
			return false
		}
	}
	return true
}

func (s *Service) insert(rec domain.Record) {
	s.state.Selected[rec.ID] = true
	s.state.ByID[rec.ID] = rec
	s.state.Order = append(s.state.Order, rec.ID)
}

func (s *Service) remove(id int64) {
	delete(s.state.Selected, id)
	delete(s.state.ByID, id)
	for i, existing := range s.state.Order {
		if existing == id {
			s.state.Order = append(s.state.Order[:i], s.state.Order[i+1:]...)
			break
		}
	}
}

func (s *Service) publishChanged(id int64, selected bool) {
	if s.bus != nil {
		s.bus.Publish(eventbus.SelectionChangedEvent{
			RecordID: id,
			Selected: selected,
			Count:    len(s.state.Order),
		})
	}
}
