package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleEcho = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	styleEmph = lipgloss.NewStyle().
			Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleInputRef = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleCommand = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Underline(true)

	styleLink = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)

	styleInsert = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	styleDelete = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Strikethrough(true)

	styleBoard = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))
)

// classStyles maps element classes to their style.
var classStyles = map[string]lipgloss.Style{
	"heading":      styleHeading,
	"emph":         styleEmph,
	"hint":         styleHint,
	"count":        styleHint,
	"error":        styleError,
	"input":        styleInputRef,
	"command":      styleCommand,
	"diff-insert":  styleInsert,
	"diff-delete":  styleDelete,
	"conway-board": styleBoard,
}

// Styler renders element classes with lipgloss.
type Styler struct{}

func (Styler) Style(class, s string) string {
	st, ok := classStyles[class]
	if !ok || s == "" {
		return s
	}
	return st.Render(s)
}

// Link shows the target after the text; terminals cannot follow it.
func (Styler) Link(text, href string) string {
	if href == "" || href == text {
		return styleLink.Render(text)
	}
	return styleLink.Render(text) + styleHint.Render(" <"+href+">")
}

// styledEcho renders the submitted line with a "> " prefix.
func styledEcho(input string) string {
	return styleEcho.Render("> " + input)
}
