package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// OptionList renders the numbered answer options of a question. Before
// the reveal it highlights Selected; after it, the correct option turns
// green and a wrong pick turns red.
type OptionList struct {
	Options  []string
	Selected string
	Revealed bool
	Correct  string
	Width    int
}

// View renders the list as fixed-width rows, centered as a block.
func (o OptionList) View() string {
	rowWidth := min(max(o.Width-8, 20), 44)

	rows := make([]string, 0, len(o.Options))
	for i, opt := range o.Options {
		marker := "  "
		if opt == o.Selected {
			marker = "▸ "
		}
		label := fmt.Sprintf("%s%d  %s", marker, i+1, opt)

		style := lipgloss.NewStyle().
			Width(rowWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Foreground(theme.Text)

		switch {
		case o.Revealed && opt == o.Correct:
			label += "  ✓"
			style = style.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true)
		case o.Revealed && opt == o.Selected:
			label += "  ✗"
			style = style.Foreground(theme.Error).BorderForeground(theme.Error).Bold(true)
		case o.Revealed:
			style = style.Foreground(theme.TextDim)
		case opt == o.Selected:
			style = style.Foreground(theme.ArcadeYellow).BorderForeground(theme.ArcadeYellow).Bold(true)
		}
		rows = append(rows, style.Render(label))
	}

	return lipgloss.PlaceHorizontal(o.Width, lipgloss.Center, strings.Join(rows, "\n"))
}
