package session

import "time"

// Outcome is what a completed session hands to progress tracking.
type Outcome struct {
	SessionID      string
	LevelID        int
	Score          int
	TotalQuestions int
	Duration       time.Duration
	Missed         []AnswerRecord
}

// BuildOutcome summarizes the session. Missed keeps the first miss of
// each prompt in order.
func BuildOutcome(state *SessionState) Outcome {
	var missed []AnswerRecord
	seen := make(map[string]bool)
	for _, a := range state.Answers {
		if a.Correct || seen[a.Prompt] {
			continue
		}
		seen[a.Prompt] = true
		missed = append(missed, a)
	}
	return Outcome{
		SessionID:      state.SessionID,
		LevelID:        state.LevelID,
		Score:          state.Score,
		TotalQuestions: len(state.Questions),
		Duration:       time.Since(state.StartTime),
		Missed:         missed,
	}
}
