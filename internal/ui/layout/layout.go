package layout

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompact reports whether the content area is too small for the
// full-size title art and bordered buttons.
func IsCompact(width, height int) bool {
	return width < CompactWidthThreshold || height+HeaderHeight+FooterHeight < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Center places s in the middle of a line of the given width.
func Center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Line renders text centered in width with the given foreground.
func Line(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(fg).Render(text)
}

// Rule renders a dim horizontal divider, centered.
func Rule(width, n int) string {
	n = max(min(n, width-4), 0)
	return Center(width, lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", n)))
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("Terminal too small!\n\nLexiz needs at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(text))
}

func bar(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the top bar: app name, screen title centered, and
// the completed level counter on the right.
func RenderHeader(title string, completed, total int, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Lexiz")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	counter := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).
		Render(fmt.Sprintf("✅ %d/%d levels", completed, total))

	inner := max(width-4, 0)
	nw, mw, cw := lipgloss.Width(name), lipgloss.Width(mid), lipgloss.Width(counter)
	gapL := max((inner-mw)/2-nw, 1)
	gapR := max(inner-nw-gapL-mw-cw, 1)

	return bar(width, name+strings.Repeat(" ", gapL)+mid+strings.Repeat(" ", gapR)+counter)
}

// RenderFooter renders the key hint bar.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description))
	}
	return bar(width, b.String())
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}
