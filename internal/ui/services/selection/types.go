package selection

import "recsel/internal/domain"

// State holds the current selection. Order preserves insertion so review
// and export list records in the order they were picked.
type State struct {
	Selected map[int64]bool
	Order    []int64
	ByID     map[int64]domain.Record
}

// NewState creates an empty selection state
func NewState() *State {
	return &State{
		Selected: make(map[int64]bool),
		ByID:     make(map[int64]domain.Record),
	}
}
