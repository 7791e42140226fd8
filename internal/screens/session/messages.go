package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	sess "github.com/abhisek/lexiz/internal/session"
)

// revealDoneMsg fires when the answer reveal has been on screen for
// RevealDelay. The ticket names the reveal it belongs to.
type revealDoneMsg struct {
	Ticket sess.Ticket
}

// revealAfter schedules the advance for a committed answer.
func revealAfter(t sess.Ticket, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return revealDoneMsg{Ticket: t}
	})
}
