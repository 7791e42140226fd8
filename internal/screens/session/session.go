// Package session is the quiz screen: one pass through a level's
// questions, from first prompt to the results screen.
package session

import (
	"context"
	"slices"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/results"
	sess "github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/ui/keys"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz.
type QuizScreen struct {
	svc     *screen.Services
	levelID int
	theme   string
	state   *sess.SessionState
	delay   time.Duration

	confirmQuit bool
	// held is a reveal that expired while the quit prompt was open.
	held   *sess.Ticket
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New builds a fresh session for levelID. Generation problems are shown
// on screen rather than returned.
func New(svc *screen.Services, levelID int) *QuizScreen {
	s := &QuizScreen{svc: svc, levelID: levelID, delay: sess.RevealDelay}

	lvl, err := svc.Vocab.Level(levelID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.theme = lvl.Theme

	questions, err := svc.Generator.Generate(levelID, svc.Vocab.Levels)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.state = sess.NewSessionState(levelID, questions)
	svc.Logger().Debug("quiz started", "session", s.state.SessionID, "level", levelID, "questions", len(questions))
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.state != nil && s.state.Phase == sess.PhaseCompleted {
		return s.finish()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return keys.Hints(keys.Back)
	case s.confirmQuit:
		return keys.Hints(keys.Yes, keys.No)
	case s.state.Phase == sess.PhaseAnswerRevealed:
		return keys.Hints()
	}
	commit := keys.Commit
	commit.SetEnabled(s.state.Phase == sess.PhaseAnswerSelected)
	return keys.Hints(keys.Choose, keys.Up, keys.Down, commit, keys.Back)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revealDoneMsg:
		if s.state == nil {
			return s, nil
		}
		if s.confirmQuit {
			t := msg.Ticket
			s.held = &t
			return s, nil
		}
		return s, s.advance(msg.Ticket)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.errMsg != "" {
		if key.Matches(msg, keys.Back, keys.Enter) {
			return router.Pop
		}
		return nil
	}

	if s.confirmQuit {
		switch {
		case key.Matches(msg, keys.Yes):
			s.svc.Logger().Info("quiz abandoned",
				"session", s.state.SessionID, "level", s.levelID, "answered", s.state.Answered())
			return router.Pop
		case key.Matches(msg, keys.No):
			s.confirmQuit = false
			if s.held != nil {
				t := *s.held
				s.held = nil
				return func() tea.Msg { return revealDoneMsg{Ticket: t} }
			}
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		s.confirmQuit = true
	case key.Matches(msg, keys.Choose):
		sess.SelectIndex(s.state, keys.Digit(msg.String()))
	case key.Matches(msg, keys.Up):
		s.moveSelection(-1)
	case key.Matches(msg, keys.Down):
		s.moveSelection(1)
	case key.Matches(msg, keys.Commit):
		if rev, ok := sess.Commit(s.state); ok {
			return revealAfter(rev.Ticket, s.delay)
		}
	}
	return nil
}

// moveSelection steps the highlighted option, wrapping at the ends.
func (s *QuizScreen) moveSelection(delta int) {
	q := s.state.CurrentQuestion()
	if q == nil || len(q.Options) == 0 {
		return
	}
	n := len(q.Options)
	i := slices.Index(q.Options, s.state.Selected)
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = (i + delta + n) % n
	}
	sess.SelectIndex(s.state, i)
}

func (s *QuizScreen) advance(t sess.Ticket) tea.Cmd {
	done, ok := sess.Advance(s.state, t)
	if !ok || !done {
		return nil
	}
	return s.finish()
}

// finish records the outcome, starts study notes and swaps in the
// results screen.
func (s *QuizScreen) finish() tea.Cmd {
	ctx := context.Background()
	out := sess.BuildOutcome(s.state)
	res := s.svc.Progress.Record(ctx, out)
	notesPending := s.svc.Notes.Request(ctx, out)

	svc, levelID := s.svc, s.levelID
	retry := func() screen.Screen { return New(svc, levelID) }
	return router.Replace(results.New(svc, out, res, notesPending, retry))
}
