package tagfield

import "github.com/charmbracelet/lipgloss"

// Styles control the rendering of chips, the entry box and the dropdown.
type Styles struct {
	Chip       lipgloss.Style
	Entry      lipgloss.Style
	Dropdown   lipgloss.Style
	Candidate  lipgloss.Style
	Highlight  lipgloss.Style
	EmptyState lipgloss.Style
}

// DefaultStyles returns the default look: green chips, bordered dropdown.
func DefaultStyles() Styles {
	return Styles{
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#101F38")).
			Background(lipgloss.Color("#8BC34A")).
			Padding(0, 1).
			MarginRight(1),
		Entry: lipgloss.NewStyle(),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#8BC34A")).
			PaddingLeft(1),
		Candidate: lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")).
			Bold(true),
		EmptyState: lipgloss.NewStyle().
			Faint(true),
	}
}
