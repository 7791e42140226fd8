package session

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen/screentest"
	"github.com/abhisek/lexiz/internal/screens/results"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
)

func newTestQuiz(t *testing.T) *QuizScreen {
	t.Helper()
	s := New(screentest.Services(t, nil), 1)
	require.Empty(t, s.errMsg)
	s.delay = 0
	return s
}

// commitCorrect selects the right option for the current question and
// commits it, returning the reveal message.
func commitCorrect(t *testing.T, s *QuizScreen) revealDoneMsg {
	t.Helper()
	q := s.state.CurrentQuestion()
	i := slices.Index(q.Options, q.CorrectAnswer)
	require.GreaterOrEqual(t, i, 0)

	s.Update(screentest.Key(rune('1' + i)))
	_, cmd := s.Update(screentest.Enter)
	msg, ok := screentest.Run(cmd).(revealDoneMsg)
	require.True(t, ok, "expected a reveal tick after commit")
	return msg
}

func TestQuizScreen_StartsAwaitingAnswer(t *testing.T) {
	s := newTestQuiz(t)

	assert.Len(t, s.state.Questions, screentest.QuestionCount)
	assert.Equal(t, sess.PhaseAwaitingAnswer, s.state.Phase)
	assert.Contains(t, s.View(100, 30), s.state.CurrentQuestion().Prompt)
}

func TestQuizScreen_EnterWithoutSelectionIgnored(t *testing.T) {
	s := newTestQuiz(t)

	_, cmd := s.Update(screentest.Enter)
	if cmd != nil {
		t.Error("expected no command for commit without selection")
	}
	assert.Equal(t, 0, s.state.Answered())
}

func TestQuizScreen_ArrowsCycleSelection(t *testing.T) {
	s := newTestQuiz(t)
	opts := s.state.CurrentQuestion().Options

	s.Update(screentest.Down)
	assert.Equal(t, opts[0], s.state.Selected)

	s.Update(screentest.Up)
	assert.Equal(t, opts[len(opts)-1], s.state.Selected)

	s.Update(screentest.Down)
	assert.Equal(t, opts[0], s.state.Selected)
}

func TestQuizScreen_DigitOutOfRangeIgnored(t *testing.T) {
	s := newTestQuiz(t)

	s.Update(screentest.Key('9'))
	assert.Equal(t, "", s.state.Selected)
	assert.Equal(t, sess.PhaseAwaitingAnswer, s.state.Phase)
}

func TestQuizScreen_RevealThenAdvance(t *testing.T) {
	s := newTestQuiz(t)

	msg := commitCorrect(t, s)
	assert.Equal(t, sess.PhaseAnswerRevealed, s.state.Phase)
	assert.Contains(t, s.View(100, 30), "Correct!")

	s.Update(msg)
	assert.Equal(t, 1, s.state.CurrentIndex)
	assert.Equal(t, 1, s.state.Score)
	assert.Equal(t, sess.PhaseAwaitingAnswer, s.state.Phase)
}

func TestQuizScreen_StaleRevealIgnored(t *testing.T) {
	s := newTestQuiz(t)

	msg := commitCorrect(t, s)
	s.Update(msg)
	s.Update(msg)

	assert.Equal(t, 1, s.state.CurrentIndex)
}

func TestQuizScreen_RevealHeldWhileConfirmingQuit(t *testing.T) {
	s := newTestQuiz(t)

	msg := commitCorrect(t, s)
	s.Update(screentest.Esc)
	require.True(t, s.confirmQuit)

	s.Update(msg)
	assert.Equal(t, 0, s.state.CurrentIndex, "advance must wait for the prompt")
	assert.Contains(t, s.View(100, 30), "Leave this quiz?")

	_, cmd := s.Update(screentest.Key('n'))
	assert.False(t, s.confirmQuit)
	redelivered, ok := screentest.Run(cmd).(revealDoneMsg)
	require.True(t, ok)

	s.Update(redelivered)
	assert.Equal(t, 1, s.state.CurrentIndex)
}

func TestQuizScreen_QuitRecordsNothing(t *testing.T) {
	s := newTestQuiz(t)
	commitCorrect(t, s)

	s.Update(screentest.Esc)
	_, cmd := s.Update(screentest.Key('y'))

	assert.IsType(t, router.PopScreenMsg{}, screentest.Run(cmd))
	assert.Equal(t, 0, s.svc.Progress.Table().Get(1).Attempts)
	got, err := s.svc.Attempts.RecentAttempts(context.Background(), store.AttemptQuery{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuizScreen_FinishRecordsAndShowsResults(t *testing.T) {
	s := newTestQuiz(t)

	var last revealDoneMsg
	for i := 0; i < screentest.QuestionCount; i++ {
		last = commitCorrect(t, s)
		if i < screentest.QuestionCount-1 {
			s.Update(last)
		}
	}
	_, cmd := s.Update(last)

	msg, ok := screentest.Run(cmd).(router.ReplaceScreenMsg)
	require.True(t, ok, "expected the quiz to be replaced by results")
	assert.IsType(t, &results.ResultsScreen{}, msg.Screen)

	p := s.svc.Progress.Table().Get(1)
	assert.True(t, p.Completed)
	assert.Equal(t, screentest.QuestionCount, p.BestScore)
	assert.True(t, s.svc.Progress.Unlocked(2))

	got, err := s.svc.Attempts.RecentAttempts(context.Background(), store.AttemptQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Percentage)
}

func TestQuizScreen_UnknownLevelShowsError(t *testing.T) {
	s := New(screentest.Services(t, nil), 9)

	require.NotEmpty(t, s.errMsg)
	assert.True(t, strings.Contains(s.View(100, 30), "Could not start the quiz"))

	_, cmd := s.Update(screentest.Esc)
	assert.IsType(t, router.PopScreenMsg{}, screentest.Run(cmd))
}

func TestQuizScreen_KeyHintsFollowPhase(t *testing.T) {
	s := newTestQuiz(t)
	descs := func() []string {
		var out []string
		for _, h := range s.KeyHints() {
			out = append(out, h.Description)
		}
		return out
	}

	assert.NotContains(t, descs(), "Check")
	s.Update(screentest.Key('1'))
	assert.Contains(t, descs(), "Check")

	s.Update(screentest.Esc)
	assert.Equal(t, []string{"Leave quiz", "Keep going"}, descs())
}
