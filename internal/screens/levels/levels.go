// Package levels lists every vocabulary level with its lock state and
// best score, and starts a quiz on the chosen one.
package levels

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	quizscreen "github.com/abhisek/lexiz/internal/screens/session"
	"github.com/abhisek/lexiz/internal/ui/keys"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/vocab"
)

// LevelsScreen implements screen.Screen.
type LevelsScreen struct {
	svc *screen.Services

	cursor       int
	scrollOffset int
	notice       string
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)
var _ screen.Resumer = (*LevelsScreen)(nil)

// New creates the level list with the cursor on the highest unlocked level.
func New(svc *screen.Services) *LevelsScreen {
	s := &LevelsScreen{svc: svc}
	s.cursor = progress.HighestUnlocked(svc.Progress.Table(), len(svc.Vocab.Levels)) - 1
	s.cursor = max(s.cursor, 0)
	return s
}

func (s *LevelsScreen) Init() tea.Cmd { return nil }

func (s *LevelsScreen) Title() string { return "Levels" }

func (s *LevelsScreen) Resume() tea.Cmd {
	s.notice = ""
	return nil
}

func (s *LevelsScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Enter, keys.Back)
}

func (s *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, keys.Up):
		s.move(-1)
	case key.Matches(kmsg, keys.Down):
		s.move(1)
	case key.Matches(kmsg, keys.Enter):
		return s, s.selectLevel()
	case key.Matches(kmsg, keys.Back):
		return s, router.Pop
	}
	return s, nil
}

func (s *LevelsScreen) move(delta int) {
	n := len(s.svc.Vocab.Levels)
	s.cursor = min(max(s.cursor+delta, 0), n-1)
	s.notice = ""
}

func (s *LevelsScreen) selectLevel() tea.Cmd {
	levels := s.svc.Vocab.Levels
	if s.cursor >= len(levels) {
		return nil
	}
	id := levels[s.cursor].ID
	if err := s.svc.Progress.Playable(id); err != nil {
		s.notice = fmt.Sprintf("Complete level %d to unlock", id-1)
		return nil
	}
	return router.Push(quizscreen.New(s.svc, id))
}

func (s *LevelsScreen) View(width, height int) string {
	levels := s.svc.Vocab.Levels
	if len(levels) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Padding(0, 0, 0, 2).
		Render("CHOOSE A LEVEL"))
	b.WriteString("\n\n")

	rows := max(height-4, 1)
	s.adjustScroll(rows)
	end := min(s.scrollOffset+rows, len(levels))
	lines := make([]string, 0, end-s.scrollOffset)
	for i := s.scrollOffset; i < end; i++ {
		lines = append(lines, s.renderRow(levels[i], i == s.cursor, width))
	}
	b.WriteString(strings.Join(lines, "\n"))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Padding(0, 0, 0, 4).Render("🔒 " + s.notice))
	}
	return b.String()
}

func (s *LevelsScreen) adjustScroll(rows int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+rows {
		s.scrollOffset = s.cursor - rows + 1
	}
}

func (s *LevelsScreen) renderRow(lvl vocab.Level, selected bool, width int) string {
	p := s.svc.Progress.Table().Get(lvl.ID)
	unlocked := s.svc.Progress.Unlocked(lvl.ID)
	length := s.svc.Generator.Length(lvl.ID, s.svc.Vocab.Levels)

	themeWidth := max(width-52, 10)
	name := ansi.Truncate(lvl.Theme, themeWidth, "…")

	var nameStyle, dimStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dimStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case !unlocked:
		nameStyle = theme.Locked
		dimStyle = theme.Locked
	case p.Completed:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		dimStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		dimStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	best := "-"
	if p.Attempts > 0 {
		best = fmt.Sprintf("%d/%d", p.BestScore, length)
	}

	return fmt.Sprintf("  %s%s %s %s  %s  %s",
		cursor,
		progress.Badge(unlocked, p),
		nameStyle.Render(fmt.Sprintf("Level %-3d", lvl.ID)),
		nameStyle.Render(name+strings.Repeat(" ", max(themeWidth-lipgloss.Width(name), 0))),
		dimStyle.Render(fmt.Sprintf("%3d words", len(lvl.Words))),
		dimStyle.Render(fmt.Sprintf("best %7s", best)),
	)
}
