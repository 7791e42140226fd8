package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// trailing counter such as "12/50".
type ProgressBar struct {
	Label   string
	Percent float64 // 0..1
	Counter string
	Width   int
	Fill    color.Color
}

// NewProgressBar creates a progress bar for done out of total.
func NewProgressBar(label string, done, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return ProgressBar{
		Label:   label,
		Percent: pct,
		Counter: fmt.Sprintf("%d/%d", done, total),
		Width:   width,
		Fill:    theme.Secondary,
	}
}

// View renders the bar.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.Counter != "" {
		suffix = "  " + p.Counter
	}
	barWidth := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(suffix), 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	b.WriteString(lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)))
	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
