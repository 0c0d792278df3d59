package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates colored help content for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("recsel Help"))
	help.WriteString("\n")

	// Navigation section
	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move cursor up/down")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("gg/G"), descStyle.Render("First/last record on page")))
	help.WriteString("\n")

	// Paging section
	help.WriteString(sectionStyle.Render("Paging"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Previous/next page")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("p/n"), descStyle.Render("Previous/next page")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render(":"), descStyle.Render("Go to page number")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("s"), descStyle.Render("Cycle page size (5, 10, 20)")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("r"), descStyle.Render("Re-fetch the current page")))
	help.WriteString("\n")

	// Selection section
	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Space"), descStyle.Render("Toggle record under cursor")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("a/A"), descStyle.Render("Toggle all on this page")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("N"), descStyle.Render("Select the next N records")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("c"), descStyle.Render("Clear selection")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear selection")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("v"), descStyle.Render("Review selected records")))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("i"), descStyle.Render("Record details")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("?"), descStyle.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("Enter"), descStyle.Render("Confirm selection and quit")))
	help.WriteString(fmt.Sprintf("  %s          %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
