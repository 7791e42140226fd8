package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen/screentest"
	"github.com/abhisek/lexiz/internal/screens/history"
	"github.com/abhisek/lexiz/internal/screens/levels"
	quizscreen "github.com/abhisek/lexiz/internal/screens/session"
	sess "github.com/abhisek/lexiz/internal/session"
)

func TestHome_StartOpensHighestUnlockedLevel(t *testing.T) {
	svc := screentest.Services(t, nil)
	svc.Progress.Record(t.Context(), sess.Outcome{LevelID: 1, Score: 4, TotalQuestions: 4})
	h := New(svc)

	_, cmd := h.Update(screentest.Enter)
	msg, ok := screentest.Run(cmd).(router.PushScreenMsg)
	require.True(t, ok)
	require.IsType(t, &quizscreen.QuizScreen{}, msg.Screen)
	assert.Contains(t, msg.Screen.View(100, 30), "Level 2")
}

func TestHome_MenuNavigation(t *testing.T) {
	h := New(screentest.Services(t, nil))

	h.Update(screentest.Down)
	_, cmd := h.Update(screentest.Enter)
	msg := screentest.Run(cmd).(router.PushScreenMsg)
	assert.IsType(t, &levels.LevelsScreen{}, msg.Screen)

	h.Update(screentest.Down)
	h.Update(screentest.Down)
	_, cmd = h.Update(screentest.Enter)
	msg = screentest.Run(cmd).(router.PushScreenMsg)
	assert.IsType(t, &history.HistoryScreen{}, msg.Screen)
}

func TestHome_HistoryDisabledWithoutAttemptLog(t *testing.T) {
	svc := screentest.Services(t, nil)
	svc.Attempts = nil
	h := New(svc)

	for i := 0; i < 3; i++ {
		h.Update(screentest.Down)
	}
	assert.Equal(t, "EXIT", h.menu.Items[h.menu.Selected].Label)

	_, cmd := h.Update(screentest.Enter)
	assert.IsType(t, tea.QuitMsg{}, screentest.Run(cmd))
}

func TestHome_ViewShowsStats(t *testing.T) {
	svc := screentest.Services(t, nil)
	view := New(svc).View(120, 40)
	assert.Contains(t, view, "0/2 LEVELS")
	assert.Contains(t, view, "NO QUIZZES YET")

	svc.Progress.Record(t.Context(), sess.Outcome{LevelID: 1, Score: 4, TotalQuestions: 4})
	view = New(svc).View(120, 40)
	assert.Contains(t, view, "1/2 LEVELS")
	assert.Contains(t, view, "100% AVERAGE")
}
