package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen represents the current active screen in the wizard
type Screen string

const (
	ScreenForm   Screen = "form"
	ScreenResult Screen = "result"
)

// generatedMsg carries a successfully rendered QR code from the form
// screen to the result screen. savedPath is set when the code was also
// written to a file (png/svg formats).
type generatedMsg struct {
	payload   string
	art       string
	warnings  []string
	savedPath string
}

// editMsg returns to the form with the entered values intact.
type editMsg struct{}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen Screen

	FormModel   FormModel
	ResultModel ResultModel

	Width  int
	Height int
}

// NewAppModel creates a new wizard model starting at the credential form.
func NewAppModel() AppModel {
	return AppModel{
		CurrentScreen: ScreenForm,
		FormModel:     NewFormModel(),
	}
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return m.FormModel.Init()
}

// Update implements tea.Model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case generatedMsg:
		m.ResultModel = NewResultModel(msg)
		m.CurrentScreen = ScreenResult
		return m, nil

	case editMsg:
		m.CurrentScreen = ScreenForm
		return m, m.FormModel.Focus()
	}

	var cmd tea.Cmd
	switch m.CurrentScreen {
	case ScreenResult:
		m.ResultModel, cmd = m.ResultModel.Update(msg)
	default:
		m.FormModel, cmd = m.FormModel.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenResult:
		return m.ResultModel.View()
	default:
		return m.FormModel.View()
	}
}
