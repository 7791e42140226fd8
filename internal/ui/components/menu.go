package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/ui/keys"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Disabled items are skipped by the
// cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update moves the cursor and runs the selected item's action on Enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		m.move(-1)
	case key.Matches(kmsg, keys.Down):
		m.move(1)
	case key.Matches(kmsg, keys.Enter):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

func (m *Menu) move(delta int) {
	for i := m.Selected + delta; i >= 0 && i < len(m.Items); i += delta {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// DisabledSet returns the indices of disabled items.
func (m Menu) DisabledSet() map[int]bool {
	set := make(map[int]bool)
	for i, item := range m.Items {
		if item.Disabled {
			set[i] = true
		}
	}
	return set
}
