package screen

import (
	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/notes"
	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/vocab"
)

// Services bundles what screens need to build each other. Notes may be
// disabled; Attempts may be nil when the backend has no attempt log.
type Services struct {
	Vocab     *vocab.Vocabulary
	Progress  *progress.Service
	Attempts  store.AttemptRepo
	Generator *quiz.Generator
	Notes     *notes.Service
	Log       *logging.Logger
}

// QuestionsPerQuiz is the configured quiz length, used for averages.
func (s *Services) QuestionsPerQuiz() int {
	if s.Generator == nil {
		return quiz.DefaultConfig().QuestionCount
	}
	return s.Generator.Config().QuestionCount
}

// Logger returns Log, or a no-op logger.
func (s *Services) Logger() *logging.Logger {
	if s.Log == nil {
		return logging.Nop()
	}
	return s.Log
}
