package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
)

func TestDigit(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 0},
		{"4", 3},
		{"0", -1},
		{"a", -1},
		{"12", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := Digit(tt.in); got != tt.want {
			t.Errorf("Digit(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHintsSkipsDisabled(t *testing.T) {
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	off.SetEnabled(false)

	hints := Hints(Enter, off, Back)
	if len(hints) != 2 {
		t.Fatalf("len(hints) = %d, want 2", len(hints))
	}
	if hints[0].Key != "Enter" || hints[1].Description != "Back" {
		t.Errorf("hints = %+v", hints)
	}
}
