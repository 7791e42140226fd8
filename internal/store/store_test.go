package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lexiz.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.KV().Get(context.Background(), "missing")
	require.NoError(t, err)
	if found {
		t.Error("expected missing key to be not found")
	}
}

func TestKVSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "progress", `{"1":{}}`))
	require.NoError(t, kv.Set(ctx, "progress", `{"2":{}}`))

	got, found, err := kv.Get(ctx, "progress")
	require.NoError(t, err)
	require.True(t, found)
	if got != `{"2":{}}` {
		t.Errorf("Get = %q, want %q", got, `{"2":{}}`)
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexiz.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.KV().Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, found, err := s.KV().Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", got)
}

func TestAttemptsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendAttempt(ctx, Attempt{
			SessionID:  "s",
			LevelID:    i%2 + 1,
			Score:      40 + i,
			Total:      50,
			Percentage: 80 + i*2,
			Passed:     true,
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := repo.RecentAttempts(ctx, AttemptQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	if all[0].Score != 42 {
		t.Errorf("first Score = %d, want 42", all[0].Score)
	}
	if all[0].ID == "" {
		t.Error("expected generated attempt ID")
	}
	assert.True(t, all[0].Passed)
	assert.Equal(t, base.Add(2*time.Minute).UnixMilli(), all[0].RecordedAt.UnixMilli())

	lvl1, err := repo.RecentAttempts(ctx, AttemptQuery{LevelID: 1})
	require.NoError(t, err)
	require.Len(t, lvl1, 2)
	for _, a := range lvl1 {
		assert.Equal(t, 1, a.LevelID)
	}

	limited, err := repo.RecentAttempts(ctx, AttemptQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "study-notes",
		InputTokens: 10, OutputTokens: 20, LatencyMs: 300, Success: true,
	})
	require.NoError(t, err)

	require.NoError(t, s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "study-notes", ErrorMessage: "rate limited",
	}))

	var n int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM llm_requests").Scan(&n))
	if n != 2 {
		t.Errorf("llm_requests rows = %d, want 2", n)
	}

	events, err := s.Events().RecentLLMRequests(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.NotZero(t, events[0].ID)
}

func TestDefaultDBPath_Env(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("LEXIZ_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEXIZ_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lexiz", "lexiz.db"), got)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.KV().Set(ctx, "k", "v"))
	v, found, err := m.KV().Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	require.NoError(t, m.AppendAttempt(ctx, Attempt{LevelID: 1, Score: 1}))
	require.NoError(t, m.AppendAttempt(ctx, Attempt{LevelID: 2, Score: 2}))
	got, err := m.RecentAttempts(ctx, AttemptQuery{Limit: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Score)
}

func TestOpenBackendUnknown(t *testing.T) {
	_, err := OpenBackend(context.Background(), "etcd", "", "")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
