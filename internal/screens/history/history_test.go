package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen/screentest"
	"github.com/abhisek/lexiz/internal/store"
)

type failingRepo struct{ store.AttemptRepo }

func (failingRepo) RecentAttempts(context.Context, store.AttemptQuery) ([]store.Attempt, error) {
	return nil, errors.New("disk on fire")
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	msg, ok := screentest.Run(s.Init()).(historyLoadedMsg)
	require.True(t, ok)
	s.Update(msg)
}

func TestHistory_ListsAttemptsNewestFirst(t *testing.T) {
	mem := store.NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	require.NoError(t, mem.AppendAttempt(ctx, store.Attempt{LevelID: 1, Score: 30, Total: 50, Percentage: 60, RecordedAt: base}))
	require.NoError(t, mem.AppendAttempt(ctx, store.Attempt{LevelID: 2, Score: 45, Total: 50, Percentage: 90, Passed: true, RecordedAt: base.Add(time.Hour)}))

	s := New(mem)
	assert.Contains(t, s.View(100, 30), "Loading")
	load(t, s)

	view := s.View(100, 30)
	assert.Contains(t, view, "Level 2")
	assert.Contains(t, view, "45/50")
	assert.Contains(t, view, "Level 1")
	assert.Less(t, strings.Index(view, "Level 2"), strings.Index(view, "Level 1"))

	s.Update(screentest.Down)
	s.Update(screentest.Down)
	assert.Equal(t, 1, s.selected)
}

func TestHistory_Empty(t *testing.T) {
	s := New(store.NewMemoryStore())
	load(t, s)
	assert.Contains(t, s.View(100, 30), "No quizzes yet")
}

func TestHistory_Error(t *testing.T) {
	s := New(failingRepo{})
	load(t, s)
	assert.Contains(t, s.View(100, 30), "disk on fire")
}

func TestHistory_EscPops(t *testing.T) {
	s := New(store.NewMemoryStore())
	_, cmd := s.Update(screentest.Esc)
	assert.IsType(t, router.PopScreenMsg{}, screentest.Run(cmd))
}
