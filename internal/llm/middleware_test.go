package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/store"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var okContent = json.RawMessage(`{"ok":true}`)

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first attempt", []MockResponse{{Content: okContent}}, 1, false},
		{"transient then success", []MockResponse{down(), {Content: okContent}}, 2, false},
		{"all attempts fail", []MockResponse{down(), down(), down()}, 3, true},
		{"max tokens not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, {Content: okContent}}, 1, true},
		{"invalid retried once", []MockResponse{
			{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
			{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
			{Content: okContent},
		}, 2, true},
		{"rate limit honors retry-after", []MockResponse{
			{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
			{Content: okContent},
		}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, fastRetry(), nil)

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(down(), down(), MockResponse{Content: okContent})
	p := WithRetry(mock, fastRetry(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	require.Error(t, err)
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry(), nil)
	assert.Equal(t, "mock", p.ModelID())
}

func TestLogging_RecordsEvent(t *testing.T) {
	mem := store.NewMemoryStore()
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(MockResponse{
		Content: okContent,
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, ProviderMock, mem.Events(), logging.FromZap(zap.New(core)))

	ctx := WithPurpose(context.Background(), "study-notes")
	_, err := p.Generate(ctx, Request{})
	require.NoError(t, err)

	entries := logs.FilterMessage("llm request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "study-notes", fields["purpose"])
	assert.EqualValues(t, 12, fields["input_tokens"])

	events, err := mem.Events().RecentLLMRequests(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "study-notes", events[0].Purpose)
	assert.True(t, events[0].Success)
}

func TestLogging_FailureIsWarned(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := WithLogging(NewMockProvider(down()), ProviderMock, nil, logging.FromZap(zap.New(core)))

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
}

func TestPurposeDefault(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
}
