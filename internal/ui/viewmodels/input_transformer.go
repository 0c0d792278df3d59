package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputTransformer turns the active text prompt into a renderable line
type InputTransformer struct {
	prompt    string
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		textInput: textInput,
	}
}

// SetPrompt sets the prompt label, empty outside text modes
func (it *InputTransformer) SetPrompt(prompt string) {
	it.prompt = prompt
}

// GetInputLine returns the prompt plus the live input, or "" in normal mode
func (it *InputTransformer) GetInputLine() string {
	if it.prompt == "" {
		return ""
	}
	return it.prompt + it.textInput.View()
}
