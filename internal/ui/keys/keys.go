// Package keys holds the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/lexiz/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	)
	Enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
	Choose = key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "Choose"),
	)
	Commit = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Check"),
	)
	Retry = key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("Enter/r", "Retry"),
	)
	Yes = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("Y", "Leave quiz"),
	)
	No = key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("N", "Keep going"),
	)
)

// Hints converts bindings to footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// Digit returns the 0-based option index for a 1-9 key, or -1.
func Digit(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}
