package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/home"
	quizscreen "github.com/abhisek/lexiz/internal/screens/session"
	"github.com/abhisek/lexiz/internal/ui/keys"
	"github.com/abhisek/lexiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Services *screen.Services

	// StartLevel, when non-zero, opens a quiz for that level on top of
	// the home screen. The caller checks that it is playable.
	StartLevel int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *screen.Services
	router *router.Router
	start  tea.Cmd
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	m := AppModel{
		svc:    opts.Services,
		router: router.New(home.New(opts.Services)),
	}
	if opts.StartLevel > 0 {
		m.start = router.Push(quizscreen.New(opts.Services, opts.StartLevel))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.start
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Quit) {
			m.svc.Notes.Cancel()
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			footerHints = p.KeyHints()
		}
	}
	if footerHints == nil {
		footerHints = keys.Hints(keys.Back, keys.Quit)
	}

	sum := m.svc.Progress.Summary(m.svc.QuestionsPerQuiz())
	header := layout.RenderHeader(title, sum.CompletedLevels, sum.TotalLevels, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
