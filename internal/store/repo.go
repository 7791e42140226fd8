package store

import (
	"context"
	"time"
)

// KV is a flat string key-value store. Progress lives under one key.
type KV interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Attempt is one completed quiz.
type Attempt struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	LevelID    int       `json:"level_id"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	Passed     bool      `json:"passed"`
	RecordedAt time.Time `json:"recorded_at"`
}

// AttemptQuery filters RecentAttempts.
type AttemptQuery struct {
	Limit   int // max results (0 = unlimited)
	LevelID int // 0 = all levels
}

// AttemptRepo is the append-only log of completed quizzes.
type AttemptRepo interface {
	// AppendAttempt records a completed quiz.
	AppendAttempt(ctx context.Context, a Attempt) error

	// RecentAttempts returns attempts newest first.
	RecentAttempts(ctx context.Context, q AttemptQuery) ([]Attempt, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLMRequestEventData. ID is zero on
// backends without row IDs.
type LLMRequestEvent struct {
	LLMRequestEventData
	ID        int64     `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventRepo records LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns events newest first. limit <= 0 means all.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}

// Backend bundles everything lexiz persists.
type Backend interface {
	KV() KV
	Attempts() AttemptRepo
	Events() EventRepo
	Close() error
}

func filterAttempts(all []Attempt, q AttemptQuery) []Attempt {
	var out []Attempt
	for _, a := range all {
		if q.LevelID != 0 && a.LevelID != q.LevelID {
			continue
		}
		out = append(out, a)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out
}
