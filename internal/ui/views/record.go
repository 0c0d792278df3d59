package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"recsel/internal/domain"
)

// RecordRenderer handles rendering of record rows
type RecordRenderer struct {
	styles     *Styles
	showLabels bool
}

// NewRecordRenderer creates a new record renderer
func NewRecordRenderer(styles *Styles, showLabels bool) *RecordRenderer {
	return &RecordRenderer{
		styles:     styles,
		showLabels: showLabels,
	}
}

// RenderRecord renders one record row
func (r *RecordRenderer) RenderRecord(rec domain.Record, isCursor bool, isSelected bool, width int) string {
	// Background color for the cursor row
	bgColor := ""
	if isCursor {
		bgColor = "238"
	}

	mark := "[ ]"
	markStyle := lipgloss.NewStyle()
	if isSelected {
		mark = "[x]"
		markStyle = r.styles.Mark
	}
	if bgColor != "" {
		markStyle = markStyle.Background(lipgloss.Color(bgColor))
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle := lipgloss.NewStyle()
	labelStyle := lipgloss.NewStyle().Faint(true)
	gapStyle := lipgloss.NewStyle()
	if bgColor != "" {
		idStyle = idStyle.Background(lipgloss.Color(bgColor))
		titleStyle = titleStyle.Background(lipgloss.Color(bgColor))
		labelStyle = labelStyle.Background(lipgloss.Color(bgColor))
		gapStyle = gapStyle.Background(lipgloss.Color(bgColor))
	}

	title := rec.Title
	if width > 0 {
		// mark + gap + id + gap leaves this much for the text
		maxTitle := width - 16
		if maxTitle > 3 && len(title) > maxTitle {
			title = title[:maxTitle-3] + "..."
		}
	}

	var parts []string
	parts = append(parts, markStyle.Render(mark))
	parts = append(parts, gapStyle.Render(" "))
	parts = append(parts, idStyle.Render(fmt.Sprintf("%6d", rec.ID)))
	parts = append(parts, gapStyle.Render("  "))
	parts = append(parts, titleStyle.Render(title))

	if r.showLabels && rec.Label != "" {
		parts = append(parts, gapStyle.Render("  "))
		parts = append(parts, labelStyle.Render(rec.Label))
	}

	return strings.Join(parts, "")
}
