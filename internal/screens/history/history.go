// Package history lists recent quiz attempts, newest first.
package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/ui/keys"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Limit is how many attempts the screen loads.
const Limit = 50

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// HistoryScreen implements screen.Screen.
type HistoryScreen struct {
	repo         store.AttemptRepo
	attempts     []store.Attempt
	selected     int
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a history screen over repo.
func New(repo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		attempts, err := repo.RecentAttempts(context.Background(), store.AttemptQuery{Limit: Limit})
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Back)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.attempts = msg.Attempts
		s.loaded = true

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return s, router.Pop
		case key.Matches(msg, keys.Up):
			s.selected = max(s.selected-1, 0)
		case key.Matches(msg, keys.Down):
			s.selected = max(min(s.selected+1, len(s.attempts)-1), 0)
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return layout.Line(width, theme.Error, fmt.Sprintf("\n\nError: %s", s.errMsg))
	case !s.loaded:
		return layout.Line(width, theme.TextDim, "\n\n  Loading history...")
	case len(s.attempts) == 0:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start one from the menu!")
	}

	rows := max(height-2, 1)
	if s.selected < s.scrollOffset {
		s.scrollOffset = s.selected
	}
	if s.selected >= s.scrollOffset+rows {
		s.scrollOffset = s.selected - rows + 1
	}
	end := min(s.scrollOffset+rows, len(s.attempts))

	var b strings.Builder
	b.WriteString("\n")
	for i := s.scrollOffset; i < end; i++ {
		b.WriteString(layout.Center(width, renderAttempt(s.attempts[i], i == s.selected)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderAttempt(a store.Attempt, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}
	mark := "✗"
	if a.Passed {
		mark = "✓"
	}

	line := fmt.Sprintf("%s%s  Level %-3d  %3d/%-3d  %3d%%  %s",
		prefix, a.RecordedAt.Local().Format("Jan 02 15:04"), a.LevelID, a.Score, a.Total, a.Percentage, mark)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case selected:
		style = style.Foreground(theme.Primary).Bold(true)
	case progress.BandFor(a.Percentage) == progress.BandGood:
		style = style.Foreground(theme.Success)
	case !a.Passed:
		style = style.Foreground(theme.TextDim)
	}
	return style.Render(line)
}
