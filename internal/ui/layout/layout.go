package layout

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/randsample/internal/ui/theme"
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// RenderHeader renders the title bar with an optional right-aligned status.
func RenderHeader(title, status string, width int) string {
	left := theme.Title.Render(" " + title)
	right := theme.Hint.Render(status + " ")

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// RenderFooter renders key hints on one line.
func RenderFooter(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+" "+
				theme.Hint.Render(h.Description))
	}
	return " " + strings.Join(parts, "   ")
}
