package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"recsel/internal/ui/input/types"
)

type GoToPageMode struct {
	TextInputMode
}

func NewGoToPageMode(ti *textinput.Model) *GoToPageMode {
	return &GoToPageMode{
		TextInputMode: NewTextInputMode(types.ModeGoToPage, "gotopage", "Page: ", ti),
	}
}
