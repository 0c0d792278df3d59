package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"recsel/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Records     []domain.Record
	Cursor      int
	SelectedIDs map[int64]bool
	ShowLabels  bool

	CurrentPage   int
	TotalPages    int
	PageSize      int
	TotalRecords  int
	SelectedCount int

	Loaded        bool
	Fetching      bool
	FetchingPage  int
	BulkRemaining int

	StatusMessage string
	StatusIsError bool

	ShowInfo    bool
	InfoContent string

	ViewportOffset int
	ViewportHeight int

	InputLine string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	recordRender *RecordRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showLabels bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		recordRender: NewRecordRenderer(styles, showLabels),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with loading indicator
	logo := r.styles.Title.Render("recsel")

	// Build loading indicators
	indicators := []string{}

	if state.Fetching {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, fmt.Sprintf("%s Loading page %d", spinner[frame], state.FetchingPage))
	}

	if state.BulkRemaining > 0 {
		indicators = append(indicators, fmt.Sprintf("↓ Selecting %d more", state.BulkRemaining))
	}

	// Build the title line with right-aligned indicators
	var titleLine string
	if len(indicators) > 0 {
		logoWidth := lipgloss.Width(logo)
		rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))
		rightWidth := lipgloss.Width(rightContent)

		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		availableWidth := termWidth - 4 // Account for main container padding
		paddingWidth := availableWidth - logoWidth - rightWidth

		if paddingWidth > 0 {
			titleLine = fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent)
		} else {
			titleLine = fmt.Sprintf("%s  %s", logo, rightContent)
		}
	} else {
		titleLine = logo
	}

	content.WriteString(titleLine)
	content.WriteString("\n")

	// Active text prompt
	if state.InputLine != "" {
		content.WriteString(state.InputLine)
		content.WriteString("\n")
		content.WriteString("\n")
	}

	// Main content
	mainContent := ""
	switch {
	case !state.Loaded && state.Fetching:
		mainContent = r.styles.Dim.Render("Loading records...")
	case !state.Loaded:
		mainContent = r.styles.Dim.Render("No records loaded. Press r to retry.")
	case len(state.Records) == 0:
		mainContent = r.styles.Dim.Render(fmt.Sprintf("Page %d is empty.", state.CurrentPage))
	default:
		mainContent = r.renderRecordList(state)
	}
	content.WriteString(mainContent)

	// Pagination and selection summary
	if state.Loaded {
		summary := fmt.Sprintf("Page %d/%d · %d/page · %d selected · %d records",
			state.CurrentPage, state.TotalPages, state.PageSize, state.SelectedCount, state.TotalRecords)
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(summary))
	}

	// Transient status line
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Calculate help text (shown at bottom when no popup is visible)
	helpText := ""
	if !state.ShowInfo {
		helpText = r.styles.Help.Render("Press ? for help")
	}

	// If we have help text, add padding to push it to the bottom
	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		helpLines := 1
		paddingNeeded := availableLines - currentLines - helpLines
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		content.WriteString("\n")
		content.WriteString(helpText)
	}

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay popup on top of main content
	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderRecordList renders the visible window of the current page
func (r *Renderer) renderRecordList(state ViewState) string {
	total := len(state.Records)

	start := state.ViewportOffset
	if start > total {
		start = total
	}
	if start < 0 {
		start = 0
	}

	effectiveHeight := state.ViewportHeight
	if effectiveHeight <= 0 {
		effectiveHeight = total
	}

	needsTop := start > 0
	needsBottom := total-start > effectiveHeight
	if needsTop {
		effectiveHeight--
	}
	if needsBottom {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	end := start + effectiveHeight
	if end > total {
		end = total
	}

	var lines []string
	if needsTop {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}

	for i := start; i < end; i++ {
		rec := state.Records[i]
		lines = append(lines, r.recordRender.RenderRecord(rec, i == state.Cursor, state.SelectedIDs[rec.ID], state.Width))
	}

	if needsBottom {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}

	return strings.Join(lines, "\n")
}
