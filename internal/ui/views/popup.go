package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup overlay centered on the main content.
// The base content is desaturated so the modal reads as the active layer.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	baseLines := strings.Split(mainContent, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	popupLines := strings.Split(styledPopup, "\n")

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := ansiRE.ReplaceAllString(line, "")
		pi := i - y
		if pi < 0 || pi >= len(popupLines) {
			out[i] = dim.Render(plain)
			continue
		}

		// Splice the popup row into the dimmed base row
		runes := []rune(plain)
		var left, right string
		if x <= len(runes) {
			left = string(runes[:x])
		} else {
			left = plain + strings.Repeat(" ", x-len(runes))
		}
		if x+modalW < len(runes) {
			right = string(runes[x+modalW:])
		}
		out[i] = dim.Render(left) + popupLines[pi] + dim.Render(right)
	}
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)
