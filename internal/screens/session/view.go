package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return layout.Line(width, theme.Error, "\n\nCould not start the quiz: "+s.errMsg)
	case s.state == nil || s.state.Phase == sess.PhaseCompleted:
		return layout.Line(width, theme.TextDim, "\n\nScoring...")
	case s.confirmQuit:
		return s.renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	state := s.state
	q := state.CurrentQuestion()

	var b strings.Builder

	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Level %d · %s", s.levelID, s.theme))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %s / %d  ",
			lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprint(state.Score)),
			state.Answered()))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")

	bar := components.NewProgressBar("", state.CurrentIndex, len(state.Questions), min(width-8, 60))
	b.WriteString(layout.Center(width, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(layout.Line(width, theme.TextDim, "What does this word mean?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")

	revealed := state.Phase == sess.PhaseAnswerRevealed
	b.WriteString(components.OptionList{
		Options:  q.Options,
		Selected: state.Selected,
		Revealed: revealed,
		Correct:  q.CorrectAnswer,
		Width:    width,
	}.View())
	b.WriteString("\n\n")

	switch {
	case revealed && state.LastAnswerCorrect:
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Success).Bold(true).Render("Correct!"))
	case revealed:
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Bold(true).
			Render(fmt.Sprintf("Not quite. %s = %s", q.Prompt, q.CorrectAnswer)))
	case state.Phase == sess.PhaseAwaitingAnswer:
		b.WriteString(layout.Line(width, theme.TextDim, "Choose with 1-4 or the arrow keys"))
	default:
		b.WriteString(layout.Line(width, theme.TextDim, "Press Enter to check"))
	}

	return b.String()
}

func (s *QuizScreen) renderQuitConfirm(width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leave this quiz?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d of %d answered. Nothing will be saved.", s.state.Answered(), len(s.state.Questions))) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Accent).Render("Y leave   ·   N keep going")

	return "\n\n" + layout.Center(width, components.Card(body, components.ContentWidth(width)))
}
