package ui

import "github.com/charmbracelet/lipgloss"

// Styles is the shared lipgloss style set for all screens.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Subtle    lipgloss.Style
	Accent    lipgloss.Style
	User      lipgloss.Style
	Assistant lipgloss.Style
	Notice    lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Blurred   lipgloss.Style
	Pane      lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set around an accent color.
func NewStyles(accent string) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)),
		User: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Assistant: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("135")),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accent)).
			Bold(true),
		Blurred: lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
	}
}

// DefaultStyles returns the style set with the default accent.
func DefaultStyles() Styles {
	return NewStyles("212")
}
