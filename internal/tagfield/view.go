package tagfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the chip row, the entry box and, when populated, the
// suggestion dropdown beneath it.
func (m Model) View() string {
	var b strings.Builder

	if m.tags.Len() > 0 {
		chips := make([]string, 0, m.tags.Len())
		for _, tok := range m.tags.Tokens() {
			chips = append(chips, m.Styles.Chip.Render(tok))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
		b.WriteString("\n")
	}

	b.WriteString(m.Styles.Entry.Render(m.input.View()))

	if len(m.suggestions) > 0 {
		var rows []string
		for i, cand := range m.suggestions {
			if i == m.cursor {
				rows = append(rows, m.Styles.Highlight.Render("> "+cand))
			} else {
				rows = append(rows, m.Styles.Candidate.Render("  "+cand))
			}
		}
		b.WriteString("\n")
		b.WriteString(m.Styles.Dropdown.Render(strings.Join(rows, "\n")))
	}

	return b.String()
}
