package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/wifiqr/internal/qr"
	"github.com/muurk/wifiqr/internal/render"
	"github.com/muurk/wifiqr/internal/wifi"
)

// Form field indices, in focus order.
const (
	fieldSSID = iota
	fieldPassword
	fieldAuth
	fieldHidden
	fieldFormat
	fieldOutput
	fieldGenerate
	fieldCount
)

var authChoices = []wifi.AuthType{wifi.AuthWPA, wifi.AuthWEP, wifi.AuthNone}

var formatChoices = []render.Format{render.FormatASCII, render.FormatPNG, render.FormatSVG}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Cycle    key.Binding
	Generate key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Cycle, k.Generate, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Cycle, k.Generate, k.Quit},
	}
}

// FormModel is the credential entry screen.
type FormModel struct {
	ssid      textinput.Model
	password  textinput.Model
	output    textinput.Model
	authIdx   int
	formatIdx int
	hidden    bool
	focus     int

	errMsg string

	help help.Model
	keys formKeyMap
}

// NewFormModel creates the form with the SSID field focused.
func NewFormModel() FormModel {
	ssid := textinput.New()
	ssid.Placeholder = "network name"
	ssid.CharLimit = wifi.MaxSSIDBytes
	ssid.Width = 40
	ssid.Focus()

	password := textinput.New()
	password.Placeholder = "passphrase"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = 40

	output := textinput.New()
	output.Placeholder = "qr.png"
	output.Width = 40

	keys := formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right", " "),
			key.WithHelp("←/→", "change value"),
		),
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "generate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	return FormModel{
		ssid:     ssid,
		password: password,
		output:   output,
		help:     help.New(),
		keys:     keys,
	}
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Focus refocuses the form after returning from the result screen.
func (m *FormModel) Focus() tea.Cmd {
	return textinput.Blink
}

// format returns the currently selected output format.
func (m FormModel) format() render.Format {
	return formatChoices[m.formatIdx]
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Next):
			m.moveFocus(1)
			return m, nil

		case key.Matches(keyMsg, m.keys.Prev):
			m.moveFocus(-1)
			return m, nil

		case key.Matches(keyMsg, m.keys.Cycle) && m.focus == fieldAuth:
			if keyMsg.String() == "left" {
				m.authIdx = (m.authIdx + len(authChoices) - 1) % len(authChoices)
			} else {
				m.authIdx = (m.authIdx + 1) % len(authChoices)
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Cycle) && m.focus == fieldHidden:
			m.hidden = !m.hidden
			return m, nil

		case key.Matches(keyMsg, m.keys.Cycle) && m.focus == fieldFormat:
			if keyMsg.String() == "left" {
				m.formatIdx = (m.formatIdx + len(formatChoices) - 1) % len(formatChoices)
			} else {
				m.formatIdx = (m.formatIdx + 1) % len(formatChoices)
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Generate):
			switch m.focus {
			case fieldSSID, fieldPassword, fieldOutput, fieldGenerate:
				return m.generate()
			default:
				m.moveFocus(1)
				return m, nil
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.ssid, cmd = m.ssid.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	m.output, cmd = m.output.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// moveFocus advances keyboard focus by delta, skipping the output-file
// field while the terminal preview format is selected.
func (m *FormModel) moveFocus(delta int) {
	focus := (m.focus + delta + fieldCount) % fieldCount
	if focus == fieldOutput && m.format() == render.FormatASCII {
		focus = (focus + delta + fieldCount) % fieldCount
	}
	m.setFocus(focus)
}

// setFocus moves keyboard focus between fields, keeping exactly one
// textinput focused at a time.
func (m *FormModel) setFocus(focus int) {
	m.focus = focus
	m.ssid.Blur()
	m.password.Blur()
	m.output.Blur()
	switch focus {
	case fieldSSID:
		m.ssid.Focus()
	case fieldPassword:
		m.password.Focus()
	case fieldOutput:
		m.output.Focus()
	}
}

// generate runs the full pipeline on the entered values. Validation errors
// stay on the form; success transitions to the result screen. For png and
// svg the code is written to the chosen file and the result screen shows a
// terminal preview alongside the saved path.
func (m FormModel) generate() (FormModel, tea.Cmd) {
	auth := authChoices[m.authIdx]
	cred := wifi.Credential{
		SSID:   m.ssid.Value(),
		Auth:   auth,
		Hidden: m.hidden,
	}
	if auth.RequiresPassword() {
		cred.Password = m.password.Value()
	}

	payload, err := cred.Payload()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	code, err := qr.Encode(payload)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	var savedPath string
	if format := m.format(); format != render.FormatASCII {
		savedPath = strings.TrimSpace(m.output.Value())
		if savedPath == "" {
			m.errMsg = fmt.Sprintf("an output file is required for %s format", format)
			return m, nil
		}
		if err := writeCodeFile(savedPath, code, format); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	}

	m.errMsg = ""
	warnings := wifi.Lint(cred)
	art := render.ASCII(code.Bitmap())
	return m, func() tea.Msg {
		return generatedMsg{payload: payload, art: art, warnings: warnings, savedPath: savedPath}
	}
}

// writeCodeFile renders the code to a freshly created file.
func writeCodeFile(path string, code *qr.Code, format render.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	renderErr := render.Render(f, code, format)
	closeErr := f.Close()
	if renderErr != nil {
		return renderErr
	}
	return closeErr
}

// View implements tea.Model
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s %s", GitHubURL, AppVersion())))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldSSID, "Network name (SSID)"))
	b.WriteString("\n")
	b.WriteString("  " + m.ssid.View())
	b.WriteString("\n\n")

	auth := authChoices[m.authIdx]

	b.WriteString(m.fieldLabel(fieldPassword, "Password"))
	b.WriteString("\n")
	if auth.RequiresPassword() {
		b.WriteString("  " + m.password.View())
	} else {
		b.WriteString("  " + SubtitleStyle.Render("(open network, no password)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldAuth, "Authentication"))
	b.WriteString("  " + SelectorStyle.Render(fmt.Sprintf("◀ %s ▶", auth)))
	b.WriteString("\n\n")

	hiddenValue := "no"
	if m.hidden {
		hiddenValue = "yes"
	}
	b.WriteString(m.fieldLabel(fieldHidden, "Hidden network"))
	b.WriteString("  " + SelectorStyle.Render(fmt.Sprintf("◀ %s ▶", hiddenValue)))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldFormat, "Output format"))
	b.WriteString("  " + SelectorStyle.Render(fmt.Sprintf("◀ %s ▶", m.format())))
	b.WriteString("\n\n")

	if m.format() != render.FormatASCII {
		b.WriteString(m.fieldLabel(fieldOutput, "Output file"))
		b.WriteString("\n")
		b.WriteString("  " + m.output.View())
		b.WriteString("\n\n")
	}

	generate := "[ Generate QR code ]"
	if m.focus == fieldGenerate {
		b.WriteString(FocusedLabelStyle.Render("▸ " + generate))
	} else {
		b.WriteString(LabelStyle.Render(generate))
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// fieldLabel renders a field label, marking the focused field.
func (m FormModel) fieldLabel(field int, label string) string {
	if m.focus == field {
		return FocusedLabelStyle.Render("▸ " + label)
	}
	return LabelStyle.Render(label)
}
