// Package home is the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/history"
	"github.com/abhisek/lexiz/internal/screens/levels"
	"github.com/abhisek/lexiz/internal/screens/overview"
	quizscreen "github.com/abhisek/lexiz/internal/screens/session"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/keys"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

// HomeScreen is the root screen.
type HomeScreen struct {
	svc  *screen.Services
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(svc *screen.Services) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START", Action: func() tea.Cmd {
			id := progress.HighestUnlocked(svc.Progress.Table(), len(svc.Vocab.Levels))
			return router.Push(quizscreen.New(svc, id))
		}},
		{Label: "LEVELS", Action: func() tea.Cmd {
			return router.Push(levels.New(svc))
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return router.Push(overview.New(svc))
		}},
		{Label: "HISTORY", Disabled: svc.Attempts == nil, Action: func() tea.Cmd {
			return router.Push(history.New(svc.Attempts))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{svc: svc, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Enter, keys.Quit)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)
	sum := h.svc.Progress.Summary(h.svc.QuestionsPerQuiz())

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(sum, cw, compact),
		components.ButtonColumn(h.menu.Labels(), h.menu.Selected, h.menu.DisabledSet(), cw, compact),
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
