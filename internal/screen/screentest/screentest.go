// Package screentest builds screen.Services over in-memory storage and
// synthesizes key presses for screen tests.
package screentest

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/notes"
	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/vocab"
)

// QuestionCount is the quiz length used by Services.
const QuestionCount = 4

// Vocabulary returns two small levels of four words each.
func Vocabulary() *vocab.Vocabulary {
	return &vocab.Vocabulary{Levels: []vocab.Level{
		{ID: 1, Theme: "Food", Words: []vocab.WordPair{
			{Term: "le pain", Translation: "빵"},
			{Term: "le fromage", Translation: "치즈"},
			{Term: "l'eau", Translation: "물"},
			{Term: "la pomme", Translation: "사과"},
		}},
		{ID: 2, Theme: "Travel", Words: []vocab.WordPair{
			{Term: "la gare", Translation: "기차역"},
			{Term: "le train", Translation: "기차"},
			{Term: "le billet", Translation: "표"},
			{Term: "la valise", Translation: "여행 가방"},
		}},
	}}
}

// Services wires Vocabulary to a MemoryStore, a seeded generator and a
// notes service over provider. A nil provider disables notes.
func Services(t *testing.T, provider llm.Provider) *screen.Services {
	t.Helper()
	v := Vocabulary()
	mem := store.NewMemoryStore()

	prog := progress.NewService(mem.KV(), mem.Attempts(), nil, v.LevelCount())
	prog.Load(t.Context())

	qc := quiz.DefaultConfig()
	qc.QuestionCount = QuestionCount

	return &screen.Services{
		Vocab:     v,
		Progress:  prog,
		Attempts:  mem.Attempts(),
		Generator: quiz.NewGeneratorWithRand(qc, rand.New(rand.NewPCG(1, 2))),
		Notes:     notes.NewService(provider, notes.DefaultConfig(), nil),
	}
}

// Key is a printable key press.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	Enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	Esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

// Run executes cmd and returns its message, or nil for a nil command.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
