package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// resultKeyMap defines key bindings for the result screen
type resultKeyMap struct {
	Edit key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k resultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k resultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Quit},
	}
}

// ResultModel displays the rendered QR code with its payload, any advisory
// findings, and the output file path for png/svg formats.
type ResultModel struct {
	payload   string
	art       string
	warnings  []string
	savedPath string

	help help.Model
	keys resultKeyMap
}

// NewResultModel creates the result screen for a rendered code.
func NewResultModel(msg generatedMsg) ResultModel {
	return ResultModel{
		payload:   msg.payload,
		art:       msg.art,
		warnings:  msg.warnings,
		savedPath: msg.savedPath,
		help:      help.New(),
		keys:      newResultKeyMap(),
	}
}

func newResultKeyMap() resultKeyMap {
	return resultKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Update implements tea.Model
func (m ResultModel) Update(msg tea.Msg) (ResultModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Edit):
			return m, func() tea.Msg { return editMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model
func (m ResultModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("SCAN TO CONNECT"))
	b.WriteString("\n\n")
	b.WriteString(m.art)
	b.WriteString("\n")
	b.WriteString(PayloadStyle.Render(m.payload))
	b.WriteString("\n")

	if m.savedPath != "" {
		b.WriteString(SelectorStyle.Render("✓ wrote " + m.savedPath))
		b.WriteString("\n")
	}

	for _, warning := range m.warnings {
		b.WriteString(WarningStyle.Render("⚠ " + warning))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
