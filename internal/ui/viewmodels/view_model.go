package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"recsel/internal/config"
	"recsel/internal/ui/services/bulkselect"
	"recsel/internal/ui/services/pagination"
	"recsel/internal/ui/services/selection"
	"recsel/internal/ui/state"
	"recsel/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	pagination       *pagination.Service
	selection        *selection.Service
	bulk             *bulkselect.Service
	width            int
	height           int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, pag *pagination.Service, sel *selection.Service, bulk *bulkselect.Service, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		pagination:       pag,
		selection:        sel,
		bulk:             bulk,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetPrompt sets the active text prompt, empty outside text modes
func (vm *ViewModel) SetPrompt(prompt string) {
	vm.inputTransformer.SetPrompt(prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	// Only the visible page's membership is needed for rendering
	selectedIDs := make(map[int64]bool, len(vm.state.Records))
	for _, rec := range vm.state.Records {
		if vm.selection.IsSelected(rec.ID) {
			selectedIDs[rec.ID] = true
		}
	}

	bulkRemaining := 0
	if vm.bulk.Active() {
		bulkRemaining = vm.bulk.Remaining()
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Records:        vm.state.Records,
		Cursor:         vm.state.Cursor,
		SelectedIDs:    selectedIDs,
		ShowLabels:     vm.config.UISettings.ShowLabels,
		CurrentPage:    vm.pagination.CurrentPage(),
		TotalPages:     vm.pagination.TotalPages(),
		PageSize:       vm.pagination.PageSize(),
		TotalRecords:   vm.pagination.TotalRecords(),
		SelectedCount:  vm.selection.Count(),
		Loaded:         vm.state.Loaded,
		Fetching:       vm.state.Fetching,
		FetchingPage:   vm.state.FetchingPage,
		BulkRemaining:  bulkRemaining,
		StatusMessage:  vm.state.StatusMessage,
		StatusIsError:  vm.state.StatusIsError,
		ShowInfo:       vm.state.ShowInfo,
		InfoContent:    vm.state.InfoContent,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		InputLine:      vm.inputTransformer.GetInputLine(),
	}
}
