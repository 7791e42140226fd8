package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps everything in process memory. The TUI falls back to
// it when the configured backend cannot be opened.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	attempts []Attempt
	events   []LLMRequestEvent
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) KV() KV                { return m }
func (m *MemoryStore) Attempts() AttemptRepo { return m }
func (m *MemoryStore) Events() EventRepo     { return m }
func (m *MemoryStore) Close() error          { return nil }

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) AppendAttempt(_ context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, a)
	return nil
}

func (m *MemoryStore) RecentAttempts(_ context.Context, q AttemptQuery) ([]Attempt, error) {
	m.mu.Lock()
	all := slices.Clone(m.attempts)
	m.mu.Unlock()
	slices.Reverse(all)
	return filterAttempts(all, q), nil
}

func (m *MemoryStore) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, LLMRequestEvent{LLMRequestEventData: data, CreatedAt: time.Now()})
	return nil
}

func (m *MemoryStore) RecentLLMRequests(_ context.Context, limit int) ([]LLMRequestEvent, error) {
	m.mu.Lock()
	all := slices.Clone(m.events)
	m.mu.Unlock()
	slices.Reverse(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
