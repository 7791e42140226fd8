// Package overview shows aggregate progress and a per-level table.
package overview

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/keys"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// OverviewScreen implements screen.Screen.
type OverviewScreen struct {
	svc          *screen.Services
	scrollOffset int
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

func New(svc *screen.Services) *OverviewScreen {
	return &OverviewScreen{svc: svc}
}

func (s *OverviewScreen) Init() tea.Cmd { return nil }

func (s *OverviewScreen) Title() string { return "Progress" }

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Back)
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Back):
		return s, router.Pop
	case key.Matches(kmsg, keys.Up):
		s.scrollOffset = max(s.scrollOffset-1, 0)
	case key.Matches(kmsg, keys.Down):
		s.scrollOffset = min(s.scrollOffset+1, max(len(s.svc.Vocab.Levels)-1, 0))
	}
	return s, nil
}

func (s *OverviewScreen) View(width, height int) string {
	sum := s.svc.Progress.Summary(s.svc.QuestionsPerQuiz())
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar("Levels", sum.CompletedLevels, sum.TotalLevels, cw)
	b.WriteString(layout.Center(width, bar.View()))
	b.WriteString("\n\n")

	stat := func(label string, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(value)
	}
	stats := strings.Join([]string{
		stat("Completed", fmt.Sprintf("%d/%d", sum.CompletedLevels, sum.TotalLevels)),
		stat("Attempts", fmt.Sprint(sum.TotalAttempts)),
		stat("Correct", fmt.Sprint(sum.TotalCorrect)),
		stat("Average", fmt.Sprintf("%d%%", sum.AverageScore)),
	}, "   ")
	b.WriteString(layout.Center(width, stats))
	b.WriteString("\n")
	b.WriteString(layout.Rule(width, cw))
	b.WriteString("\n")

	rows := max(height-8, 1)
	lvls := s.svc.Vocab.Levels
	s.scrollOffset = min(s.scrollOffset, max(len(lvls)-rows, 0))
	end := min(s.scrollOffset+rows, len(lvls))

	table := s.svc.Progress.Table()
	var lines []string
	for _, lvl := range lvls[s.scrollOffset:end] {
		p := table.Get(lvl.ID)
		unlocked := s.svc.Progress.Unlocked(lvl.ID)
		status := progress.StatusOf(p).String()
		if !unlocked {
			status = "Locked"
		}
		best := "-"
		if p.Attempts > 0 {
			best = fmt.Sprintf("%d/%d", p.BestScore, s.svc.Generator.Length(lvl.ID, lvls))
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case !unlocked:
			style = theme.Locked
		case p.Completed:
			style = style.Foreground(theme.Success)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s Level %-3d  %-12s  %3d attempts  best %7s",
			progress.Badge(unlocked, p), lvl.ID, status, p.Attempts, best)))
	}
	b.WriteString(layout.Center(width, strings.Join(lines, "\n")))
	return b.String()
}
