package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"recsel/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.PageChangeAction{Delta: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.PageChangeAction{Delta: 1}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter confirms the selection and exits
		return []types.Action{types.ConfirmAction{}}, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h", "p":
		return []types.Action{types.PageChangeAction{Delta: -1}}, true

	case "l", "n":
		return []types.Action{types.PageChangeAction{Delta: 1}}, true

	case " ":
		// Space toggles the record under the cursor
		return []types.Action{types.ToggleSelectAction{Index: -1}}, true

	case "a", "A":
		// Toggle every record on the current page
		return []types.Action{types.ToggleAllAction{}}, true

	case "c":
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "N":
		// Prompt for a select-next count
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSelectCount}}, true

	case ":":
		// Prompt for a page number
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoToPage}}, true

	case "s":
		return []types.Action{types.CyclePageSizeAction{}}, true

	case "r":
		// Re-fetch the current page
		return []types.Action{types.RefreshAction{}}, true

	case "v":
		// Review the selection in the pager
		if ctx.HasSelection() {
			return []types.Action{types.ReviewSelectionAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "i", "I":
		// Toggle info for the record under the cursor
		if ctx.TotalItems() > 0 {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, false

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear selection if any, otherwise do nothing
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		} else {
			// First g, wait for next key
			m.lastKeyWasG = true
			m.lastGTime = time.Now()
			return nil, true // consume the key but don't do anything
		}

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG && msg.String() != "g" {
			m.lastKeyWasG = false
		}
		// Also cancel if too much time has passed since first 'g'
		if m.lastKeyWasG && time.Since(m.lastGTime) >= 500*time.Millisecond {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
