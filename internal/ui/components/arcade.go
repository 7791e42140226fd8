package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every boxed section so
// they line up inside the cabinet frame.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double border, centered in the area.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded border at content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

const buttonWidth = 22

// ButtonColumn renders labels as a column of fixed-width buttons. In
// compact mode the borders are dropped.
func ButtonColumn(labels []string, selected int, disabled map[int]bool, cw int, compact bool) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		lines = append(lines, button(label, i == selected, disabled[i], compact))
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

func button(label string, selected, disabled, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	text := label
	switch {
	case disabled:
		style = style.Foreground(theme.TextDim)
	case selected:
		style = style.Bold(true).Foreground(theme.BgDark).Background(theme.ArcadeYellow)
		text = "▸ " + label
	}
	if compact {
		return style.Render(" " + text + " ")
	}

	border := theme.Border
	if selected && !disabled {
		border = theme.ArcadeYellow
	}
	return style.
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(text)
}
