package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

const titleFull = `██╗     ███████╗██╗  ██╗██╗███████╗
██║     ██╔════╝╚██╗██╔╝██║╚══███╔╝
██║     █████╗   ╚███╔╝ ██║  ███╔╝
██║     ██╔══╝   ██╔██╗ ██║ ███╔╝
███████╗███████╗██╔╝ ██╗██║███████╗
╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚══════╝`

const titleCompact = "L · E · X · I · Z"

const tagline = "Français → 한국어"

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	title := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art)
	sub := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(tagline)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + sub)
}

// renderStatsBar shows completed levels and the average score.
func renderStatsBar(sum progress.Summary, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	avgStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			levelStyle.Render(fmt.Sprintf("★%d/%d", sum.CompletedLevels, sum.TotalLevels)),
			avgStyle.Render(fmt.Sprintf("◆%d%%", sum.AverageScore)),
		)
	} else {
		avg := avgStyle.Render(fmt.Sprintf("◆ %d%% AVERAGE", sum.AverageScore))
		if sum.TotalAttempts == 0 {
			avg = dimStyle.Render("◆ NO QUIZZES YET")
		}
		stats = fmt.Sprintf("%s  %s",
			levelStyle.Render(fmt.Sprintf("★ %d/%d LEVELS", sum.CompletedLevels, sum.TotalLevels)),
			avg,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
