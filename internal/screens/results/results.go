// Package results shows a finished quiz: score, feedback, missed words
// and, when an LLM is configured, study notes for the misses.
package results

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/notes"
	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/keys"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// notesTickMsg animates the spinner and polls for finished notes.
type notesTickMsg time.Time

var notesSpinner = spinner.MiniDot

func notesTick() tea.Cmd {
	return tea.Tick(notesSpinner.FPS, func(t time.Time) tea.Msg {
		return notesTickMsg(t)
	})
}

// ResultsScreen implements screen.Screen.
type ResultsScreen struct {
	svc    *screen.Services
	out    sess.Outcome
	result progress.RecordResult
	retry  func() screen.Screen

	waiting  bool
	frame    int
	notes    *notes.Notes
	notesErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. notesPending reports whether a notes
// request was started for this outcome. retry builds a fresh quiz for
// the same level.
func New(svc *screen.Services, out sess.Outcome, result progress.RecordResult, notesPending bool, retry func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		svc:     svc,
		out:     out,
		result:  result,
		retry:   retry,
		waiting: notesPending,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.waiting {
		return notesTick()
	}
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	back := keys.Back
	back.SetHelp("Esc", "Home")
	return keys.Hints(keys.Retry, back)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case notesTickMsg:
		if !s.waiting {
			return s, nil
		}
		if res, ok := s.svc.Notes.Consume(); ok {
			s.waiting = false
			s.notes, s.notesErr = res.Notes, res.Err
			return s, nil
		}
		s.frame = (s.frame + 1) % len(notesSpinner.Frames)
		return s, notesTick()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Retry):
			s.svc.Notes.Cancel()
			return s, router.Replace(s.retry())
		case key.Matches(msg, keys.Back):
			s.svc.Notes.Cancel()
			return s, router.Home
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(layout.Line(width, theme.Secondary, fmt.Sprintf("Level %d complete", s.out.LevelID)))
	b.WriteString("\n\n")

	pct := s.result.Percentage
	score := lipgloss.NewStyle().Bold(true).Foreground(bandColor(pct)).
		Render(fmt.Sprintf("%d / %d  ·  %d%%", s.out.Score, s.out.TotalQuestions, pct))
	b.WriteString(layout.Center(width, score))
	b.WriteString("\n\n")
	b.WriteString(layout.Line(width, theme.Text, s.result.Feedback.Message))
	b.WriteString("\n")

	if s.result.NewlyCompleted {
		msg := "🏆 Level completed!"
		if next := s.out.LevelID + 1; next <= s.svc.Progress.LevelCount() {
			msg = fmt.Sprintf("🔓 Level %d unlocked!", next)
		}
		b.WriteString("\n")
		b.WriteString(layout.Line(width, theme.ArcadeYellow, msg))
		b.WriteString("\n")
	}

	if len(s.out.Missed) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, components.Card(s.renderMissed(), cw)))
		b.WriteString("\n")
	}

	if notesView := s.renderNotes(cw); notesView != "" {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, notesView))
	}

	return b.String()
}

func (s *ResultsScreen) renderMissed() string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.Error).
		Render(fmt.Sprintf("Missed words (%d)", len(s.out.Missed))))
	for _, m := range s.out.Missed {
		lines = append(lines, fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Foreground(theme.Text).Render(m.Prompt),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("= "+m.CorrectAnswer)))
	}
	return strings.Join(lines, "\n")
}

func (s *ResultsScreen) renderNotes(cw int) string {
	switch {
	case s.waiting:
		return lipgloss.NewStyle().Foreground(theme.Accent).
			Render(notesSpinner.Frames[s.frame] + " Writing study notes...")
	case s.notesErr != nil:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Study notes unavailable right now.")
	case s.notes == nil:
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render("Study notes"))
	for _, n := range s.notes.Items {
		lines = append(lines, "",
			lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(n.Term+" = "+n.Translation),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(n.Example),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(n.ExampleTranslation),
			lipgloss.NewStyle().Foreground(theme.Warning).Render("💡 "+n.Tip),
		)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func bandColor(pct int) color.Color {
	switch progress.BandFor(pct) {
	case progress.BandGood:
		return theme.Success
	case progress.BandFair:
		return theme.Warning
	default:
		return theme.Error
	}
}
