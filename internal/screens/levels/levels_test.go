package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen/screentest"
	quizscreen "github.com/abhisek/lexiz/internal/screens/session"
	sess "github.com/abhisek/lexiz/internal/session"
)

func TestLevels_CursorStartsAtHighestUnlocked(t *testing.T) {
	svc := screentest.Services(t, nil)
	assert.Equal(t, 0, New(svc).cursor)

	svc.Progress.Record(t.Context(), sess.Outcome{LevelID: 1, Score: 4, TotalQuestions: 4})
	assert.Equal(t, 1, New(svc).cursor)
}

func TestLevels_EnterOnUnlockedStartsQuiz(t *testing.T) {
	s := New(screentest.Services(t, nil))

	_, cmd := s.Update(screentest.Enter)
	msg, ok := screentest.Run(cmd).(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &quizscreen.QuizScreen{}, msg.Screen)
}

func TestLevels_LockedLevelShowsNotice(t *testing.T) {
	s := New(screentest.Services(t, nil))

	s.Update(screentest.Down)
	_, cmd := s.Update(screentest.Enter)

	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 30), "Complete level 1 to unlock")

	s.Update(screentest.Up)
	assert.NotContains(t, s.View(100, 30), "to unlock")
}

func TestLevels_CursorClamps(t *testing.T) {
	s := New(screentest.Services(t, nil))

	for i := 0; i < 5; i++ {
		s.Update(screentest.Down)
	}
	assert.Equal(t, 1, s.cursor)

	for i := 0; i < 5; i++ {
		s.Update(screentest.Up)
	}
	assert.Equal(t, 0, s.cursor)
}

func TestLevels_ViewShowsBadgesAndBest(t *testing.T) {
	svc := screentest.Services(t, nil)
	svc.Progress.Record(t.Context(), sess.Outcome{LevelID: 1, Score: 3, TotalQuestions: 4})

	view := New(svc).View(100, 30)
	assert.Contains(t, view, "✅")
	assert.Contains(t, view, "📝")
	assert.Contains(t, view, "3/4")
	assert.Contains(t, view, "Travel")
}

func TestLevels_EscPops(t *testing.T) {
	s := New(screentest.Services(t, nil))
	_, cmd := s.Update(screentest.Esc)
	assert.IsType(t, router.PopScreenMsg{}, screentest.Run(cmd))
}
