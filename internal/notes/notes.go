// Package notes generates short study notes for the words a learner
// missed in a quiz. Generation runs in the background and the UI polls
// for the result.
package notes

import "time"

// Note is a study aid for one missed word.
type Note struct {
	Term               string `json:"term"`
	Translation        string `json:"translation"`
	Example            string `json:"example"`
	ExampleTranslation string `json:"example_translation"`
	Tip                string `json:"tip"`
}

// Notes is the generated set for one finished session.
type Notes struct {
	SessionID   string
	LevelID     int
	Items       []Note
	GeneratedAt time.Time
}

// Config holds generation settings.
type Config struct {
	MaxWords    int
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns defaults for note generation.
func DefaultConfig() Config {
	return Config{
		MaxWords:    5,
		MaxTokens:   768,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
	}
}
