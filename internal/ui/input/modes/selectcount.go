package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"recsel/internal/ui/input/types"
)

type SelectCountMode struct {
	TextInputMode
}

func NewSelectCountMode(ti *textinput.Model) *SelectCountMode {
	return &SelectCountMode{
		TextInputMode: NewTextInputMode(types.ModeSelectCount, "selectcount", "Select next: ", ti),
	}
}
