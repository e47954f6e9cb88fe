package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/wifiqr/internal/version"
)

// Application branding constants
const (
	AppName   = "WIFIQR CREDENTIAL WIZARD"
	GitHubURL = "github.com/muurk/wifiqr"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	HighlightColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	// Title style - bold header above each screen
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field label (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	// Field label (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				PaddingLeft(0)

	// Selector value (auth type, format)
	SelectorStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Advisory lint findings
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Validation errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Payload echo under the rendered code
	PayloadStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)
)
