package twconfig

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the reporter and the CLI.
var (
	// StyleLocation renders file:line:col prefixes and section headers.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError renders errors and failed validations.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning renders warnings and the caret under the offending text.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleOK renders successful validations.
	StyleOK = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleHint renders rule names and hints.
	StyleHint = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// severityStyle picks the style for an issue severity.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case SeverityError:
		return StyleError
	case SeverityWarning:
		return StyleWarning
	}
	return StyleHint
}
