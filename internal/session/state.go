package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/quiz"
)

// RevealDelay is how long the answer reveal stays on screen before the
// session advances.
const RevealDelay = 1500 * time.Millisecond

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseAwaitingAnswer SessionPhase = iota // No option chosen yet
	PhaseAnswerSelected                     // Option highlighted, not committed
	PhaseAnswerRevealed                     // Committed; waiting for the timed advance
	PhaseCompleted                          // All questions answered
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseAnswerSelected:
		return "answer-selected"
	case PhaseAnswerRevealed:
		return "answer-revealed"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// SessionState tracks one run through a level's quiz.
type SessionState struct {
	// SessionID is the UUID for this session. Reveal tickets carry it.
	SessionID string

	// LevelID is the level being quizzed.
	LevelID int

	// Questions is the generated quiz, fixed for the session.
	Questions []quiz.Question

	// CurrentIndex points into Questions.
	CurrentIndex int

	// Score is the number of correct commits so far.
	Score int

	// Phase is the current session phase.
	Phase SessionPhase

	// Selected is the highlighted option; empty when nothing is selected.
	Selected string

	// LastAnswerCorrect records whether the most recent commit was correct.
	LastAnswerCorrect bool

	// Answers records every committed answer in order.
	Answers []AnswerRecord

	// StartTime is when the session began.
	StartTime time.Time

	// revealSeq increments on every commit so a ticket names exactly one reveal.
	revealSeq int
}

// AnswerRecord is one committed answer.
type AnswerRecord struct {
	Prompt        string
	CorrectAnswer string
	Chosen        string
	Correct       bool
}

// Ticket identifies the reveal that a delayed advance belongs to.
type Ticket struct {
	SessionID string
	Seq       int
}

// Reveal is returned by Commit. The caller schedules Advance with Ticket
// after RevealDelay.
type Reveal struct {
	Correct       bool
	CorrectAnswer string
	Ticket        Ticket
}

// NewSessionState starts a session over the given questions. A session
// with no questions is already complete.
func NewSessionState(levelID int, questions []quiz.Question) *SessionState {
	s := &SessionState{
		SessionID: uuid.NewString(),
		LevelID:   levelID,
		Questions: questions,
		Phase:     PhaseAwaitingAnswer,
		StartTime: time.Now(),
	}
	if len(questions) == 0 {
		s.Phase = PhaseCompleted
	}
	return s
}

// CurrentQuestion returns the active question, or nil once complete.
func (s *SessionState) CurrentQuestion() *quiz.Question {
	if s.Phase == PhaseCompleted || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// Answered returns how many questions have been committed.
func (s *SessionState) Answered() int {
	return len(s.Answers)
}

// Progress returns the fraction of questions already passed (0.0-1.0).
func (s *SessionState) Progress() float64 {
	if len(s.Questions) == 0 {
		return 1
	}
	return float64(s.CurrentIndex) / float64(len(s.Questions))
}
