package ui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"recsel/internal/config"
	"recsel/internal/domain"
	"recsel/internal/eventbus"
	"recsel/internal/logging"
	"recsel/internal/ui/commands"
	"recsel/internal/ui/input"
	inputtypes "recsel/internal/ui/input/types"
	"recsel/internal/ui/services/bulkselect"
	"recsel/internal/ui/services/pagination"
	"recsel/internal/ui/services/selection"
	"recsel/internal/ui/state"
	"recsel/internal/ui/viewmodels"
	"recsel/internal/ui/views"
)

// PageFetcher issues one paged query against the record catalog
type PageFetcher interface {
	FetchPage(ctx context.Context, pageNumber, pageSize int) (*domain.Page, error)
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState // centralized state
	fetcher PageFetcher
	log     zerolog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode
	aborted     bool // quit without confirming the selection

	// Every fetch captures the seq current at issue time; responses
	// carrying an older seq are discarded wholesale.
	fetchSeq  uint64
	statusSeq int // invalidates pending status expiry timers

	// Services
	pagination *pagination.Service
	selection  *selection.Service
	bulk       *bulkselect.Service

	// Handlers
	renderer     *views.Renderer       // view renderer
	viewModel    *viewmodels.ViewModel // view model for rendering
	cmdExecutor  *commands.Executor    // command executor
	inputHandler *input.Handler        // input handling
	pagerOps     *PagerOps             // external pager handler
	helpRenderer *HelpRenderer         // help content

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, fetcher PageFetcher) *Model {
	appState := state.NewAppState()
	pag := pagination.NewService(cfg.PageSize)
	sel := selection.NewService(bus)
	bulk := bulkselect.NewService(sel, bus)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		fetcher:      fetcher,
		log:          logging.NewLogger("ui"),
		pagination:   pag,
		selection:    sel,
		bulk:         bulk,
		renderer:     views.NewRenderer(cfg.UISettings.ShowLabels),
		inputHandler: input.New(),
		pagerOps:     NewPagerOps(),
		helpRenderer: NewHelpRenderer(),
	}

	m.cmdExecutor = commands.NewExecutor(appState, bus, pag, sel, bulk)

	// Create view model with a placeholder text input (actual one is in input handler)
	placeholderTextInput := textinput.New()
	m.viewModel = viewmodels.NewViewModel(appState, cfg, pag, sel, bulk, placeholderTextInput)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pagerOps != nil {
		m.pagerOps.SetProgram(p)
	}
}

// Aborted reports whether the session ended without confirming the selection
func (m *Model) Aborted() bool {
	return m.aborted
}

// SelectedRecords returns the final selection in the order it was built
func (m *Model) SelectedRecords() []domain.Record {
	return m.selection.Records()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	// The first page is fetched directly. RequestPageChange would reject
	// it, total pages is unknown until a fetch succeeds.
	m.state.ViewportHeight = 20 // Will be updated on first WindowSizeMsg
	return tea.Batch(m.issueFetch(1), tick())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		// The info popup swallows keys until dismissed
		if m.state.ShowInfo {
			switch msg.String() {
			case "esc", "i", "q":
				m.state.ShowInfo = false
				m.state.InfoContent = ""
			}
			return m, nil
		}

		ctx := &input.ModelContext{
			State:      m.state,
			Pagination: m.pagination,
			Selection:  m.selection,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		// Update text input in view model if in text mode
		if ti := m.inputHandler.TextInput(); ti != nil {
			m.viewModel.UpdateTextInput(*ti)
		}

		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			if ti := m.inputHandler.TextInput(); ti != nil {
				m.viewModel.UpdateTextInput(*ti)
			}
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetPrompt(m.inputHandler.CurrentPrompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1)
		case "down":
			m.state.MoveCursor(1)
		case "home":
			m.state.CursorHome()
		case "end":
			m.state.CursorEnd()
		}

	case inputtypes.PageChangeAction:
		return m.fetchIfOwed(m.cmdExecutor.ExecuteStepPage(a.Delta))

	case inputtypes.GoToPageAction:
		return m.fetchIfOwed(m.cmdExecutor.ExecuteGoToPage(a.Page))

	case inputtypes.CyclePageSizeAction:
		return m.fetchIfOwed(m.cmdExecutor.ExecuteCyclePageSize())

	case inputtypes.ToggleSelectAction:
		m.cmdExecutor.ExecuteToggleSelection(a.Index)

	case inputtypes.ToggleAllAction:
		m.cmdExecutor.ExecuteToggleAll()

	case inputtypes.ClearSelectionAction:
		m.cmdExecutor.ExecuteClearSelection()
		if m.state.StatusMessage != "" {
			return m.expireStatus()
		}

	case inputtypes.BulkSelectAction:
		return m.fetchIfOwed(m.cmdExecutor.ExecuteStartBulkSelect(a.Count))

	case inputtypes.SubmitTextAction:
		return m.handleTextSubmit(a)

	case inputtypes.CancelTextAction:
		// Nothing to undo, the prompt state lives in the input handler

	case inputtypes.UpdateTextAction:
		// The view syncs from the handler's text input after every key

	case inputtypes.RefreshAction:
		m.state.ClearStatus()
		return m.fetchIfOwed(m.cmdExecutor.ExecuteRefresh())

	case inputtypes.ReviewSelectionAction:
		return m.showPager(m.buildReviewContent())

	case inputtypes.ToggleInfoAction:
		m.state.ShowInfo = !m.state.ShowInfo
		if m.state.ShowInfo {
			m.state.InfoContent = m.buildRecordInfo()
		} else {
			m.state.InfoContent = ""
		}

	case inputtypes.ToggleHelpAction:
		return m.showPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.ConfirmAction:
		return tea.Quit

	case inputtypes.QuitAction:
		if a.Force {
			m.aborted = true
		}
		return tea.Quit
	}

	return nil
}

// handleTextSubmit routes a submitted prompt back through processAction
func (m *Model) handleTextSubmit(a inputtypes.SubmitTextAction) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(a.Text))
	if err != nil {
		// Bad input is dropped without complaint, same as out-of-range pages
		return nil
	}

	switch a.Mode {
	case inputtypes.ModeGoToPage:
		return m.processAction(inputtypes.GoToPageAction{Page: n})
	case inputtypes.ModeSelectCount:
		return m.processAction(inputtypes.BulkSelectAction{Count: n})
	}
	return nil
}

// handleNonKeyboardMsg handles everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Don't continue the tick loop while an external pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case pageLoadedMsg:
		if msg.seq != m.fetchSeq {
			m.log.Debug().
				Uint64("seq", msg.seq).
				Uint64("latest", m.fetchSeq).
				Int("page", msg.page.PageNumber).
				Msg("discarding stale page response")
			return m, nil
		}
		return m, m.applyPage(msg.page)

	case fetchFailedMsg:
		if msg.seq != m.fetchSeq {
			m.log.Debug().
				Uint64("seq", msg.seq).
				Uint64("latest", m.fetchSeq).
				Int("page", msg.pageNumber).
				Msg("discarding stale fetch failure")
			return m, nil
		}
		m.state.Fetching = false
		m.state.FetchingPage = 0
		m.log.Error().
			Err(msg.err).
			Int("page", msg.pageNumber).
			Int("limit", msg.pageSize).
			Msg("fetch failed")
		if m.bus != nil {
			m.bus.Publish(eventbus.FetchFailedEvent{
				PageNumber: msg.pageNumber,
				PageSize:   msg.pageSize,
				Err:        msg.err,
			})
		}
		// The error stays visible until a retry succeeds. A bulk select in
		// progress keeps its remaining count and resumes on the next page.
		m.state.SetStatus(fmt.Sprintf("Fetch failed: %v", msg.err), true)
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		// The tick loop stopped while the pager ran, restart it
		return m, tick()

	case clearStatusMsg:
		if msg.id == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// applyPage installs a fetched page and feeds a running bulk select
func (m *Model) applyPage(page domain.Page) tea.Cmd {
	m.state.Fetching = false
	m.state.FetchingPage = 0

	m.pagination.SetTotals(page.TotalRecords, page.TotalPages)
	m.state.SetRecords(page.Items)
	firstLoad := !m.state.Loaded
	m.state.Loaded = true
	m.state.ClearStatus()

	m.log.Debug().
		Int("page", page.PageNumber).
		Int("count", len(page.Items)).
		Int("total", page.TotalRecords).
		Msg("page applied")

	if m.bus != nil {
		m.bus.Publish(eventbus.PageLoadedEvent{
			PageNumber: page.PageNumber,
			PageSize:   page.PageSize,
			Count:      len(page.Items),
			Total:      page.TotalRecords,
		})
	}

	if firstLoad && os.Getenv("RECSEL_E2E_TEST") == "1" {
		// Marker for tests driving the TUI through a pty
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	out := m.bulk.OnPageArrived(&page, m.pagination.CurrentPage())
	if out.Advance {
		m.pagination.AdvancePage()
		return m.issueFetch(m.pagination.CurrentPage())
	}
	return nil
}

// issueFetch starts a fetch for the given page, tagged with a fresh seq
func (m *Model) issueFetch(page int) tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	size := m.pagination.PageSize()
	timeout := time.Duration(m.config.RequestTimeoutSeconds) * time.Second

	m.state.Fetching = true
	m.state.FetchingPage = page

	m.log.Debug().
		Uint64("seq", seq).
		Int("page", page).
		Int("limit", size).
		Msg("issuing fetch")

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, err := m.fetcher.FetchPage(ctx, page, size)
		if err != nil {
			return fetchFailedMsg{seq: seq, pageNumber: page, pageSize: size, err: err}
		}
		return pageLoadedMsg{seq: seq, page: *result}
	}
}

// fetchIfOwed turns a command result into a fetch command
func (m *Model) fetchIfOwed(res commands.Result) tea.Cmd {
	if res.FetchPage > 0 {
		return m.issueFetch(res.FetchPage)
	}
	return nil
}

// expireStatus schedules the current status message to be cleared
func (m *Model) expireStatus() tea.Cmd {
	m.statusSeq++
	id := m.statusSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// showPager runs the pager over content, pausing rendering while it owns
// the terminal
func (m *Model) showPager(content string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.pagerOps.ShowInPager(content)

		m.program.Send(resumeRenderingMsg{})

		return pagerClosedMsg{err: err}
	}
}

// buildRecordInfo builds the info popup content for the record under the cursor
func (m *Model) buildRecordInfo() string {
	rec, ok := m.state.CurrentRecord()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(rec.Title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("ID:        %d\n", rec.ID))
	if rec.Label != "" {
		b.WriteString(fmt.Sprintf("Label:     %s\n", rec.Label))
	}
	selected := "no"
	if m.selection.IsSelected(rec.ID) {
		selected = "yes"
	}
	b.WriteString(fmt.Sprintf("Selected:  %s\n", selected))
	b.WriteString(fmt.Sprintf("Page:      %d of %d", m.pagination.CurrentPage(), m.pagination.TotalPages()))
	return b.String()
}

// buildReviewContent builds the pager content listing the selection
func (m *Model) buildReviewContent() string {
	recs := m.selection.Records()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Selected records (%d)\n\n", len(recs)))
	for _, rec := range recs {
		if rec.Label != "" {
			b.WriteString(fmt.Sprintf("  %6d  %s  (%s)\n", rec.ID, rec.Title, rec.Label))
		} else {
			b.WriteString(fmt.Sprintf("  %6d  %s\n", rec.ID, rec.Title))
		}
	}
	return b.String()
}

// updateViewportHeight recomputes the list window from the terminal height
func (m *Model) updateViewportHeight() {
	// Title, prompt line, summary, status, help hint, container padding
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
	m.state.EnsureCursorVisible()
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
