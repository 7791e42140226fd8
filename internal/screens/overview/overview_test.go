package overview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen/screentest"
	sess "github.com/abhisek/lexiz/internal/session"
)

func TestOverview_ShowsAggregateAndRows(t *testing.T) {
	svc := screentest.Services(t, nil)
	svc.Progress.Record(t.Context(), sess.Outcome{LevelID: 1, Score: 2, TotalQuestions: 4})
	svc.Progress.Record(t.Context(), sess.Outcome{LevelID: 1, Score: 4, TotalQuestions: 4})

	view := New(svc).View(100, 30)
	assert.Contains(t, view, "1/2")
	assert.Contains(t, view, "75%")
	assert.Contains(t, view, "Completed")
	assert.Contains(t, view, "2 attempts")
	assert.Contains(t, view, "4/4")
	assert.Contains(t, view, "Not started")
}

func TestOverview_EscPops(t *testing.T) {
	s := New(screentest.Services(t, nil))
	_, cmd := s.Update(screentest.Esc)
	assert.IsType(t, router.PopScreenMsg{}, screentest.Run(cmd))
}

func TestOverview_LockedLevels(t *testing.T) {
	view := New(screentest.Services(t, nil)).View(100, 30)
	assert.Contains(t, view, "Locked")
	assert.Contains(t, view, "0 attempts")
}
