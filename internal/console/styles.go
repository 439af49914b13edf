package console

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the console renderer
type Styles struct {
	Title    lipgloss.Style
	RedCard  lipgloss.Style
	Card     lipgloss.Style
	Info     lipgloss.Style
	Prompt   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Showdown lipgloss.Style
}

// DefaultStyles returns the colored console styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),

		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Card: lipgloss.NewStyle().
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),

		Showdown: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
	}
}

// PlainStyles returns unstyled output for dumb terminals and tests
func PlainStyles() Styles {
	return Styles{}
}
