package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/session"
)

// Result is a finished generation, successful or not.
type Result struct {
	Notes *Notes
	Err   error
}

// Service generates study notes asynchronously. A new request cancels
// the one in flight, so at most one result is pending.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *logging.Logger

	mu      sync.Mutex
	gen     int
	cancel  context.CancelFunc
	pending *Result
}

// NewService creates a notes service. A nil provider yields a disabled
// service whose Request is a no-op.
func NewService(provider llm.Provider, cfg Config, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = DefaultConfig().MaxWords
	}
	return &Service{provider: provider, cfg: cfg, log: log.With("component", "notes")}
}

// Enabled reports whether an LLM provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Request starts generation for the missed words of out. It reports
// whether a request was started; nothing starts when the service is
// disabled or nothing was missed.
func (s *Service) Request(ctx context.Context, out session.Outcome) bool {
	if !s.Enabled() || len(out.Missed) == 0 {
		return false
	}
	missed := out.Missed
	if len(missed) > s.cfg.MaxWords {
		missed = missed[:s.cfg.MaxWords]
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.pending = nil
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		notes, err := s.generate(ctx, out, missed)
		if err != nil && !errors.Is(err, context.Canceled) {
			s.log.Warn("generate study notes failed", "session", out.SessionID, "err", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = &Result{Notes: notes, Err: err}
		s.cancel = nil
	}()
	return true
}

// Consume returns the pending result if one is ready and clears the
// slot. It returns false while generation is still running.
func (s *Service) Consume() (Result, bool) {
	if s == nil {
		return Result{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return Result{}, false
	}
	r := *s.pending
	s.pending = nil
	return r, true
}

// Cancel abandons any request in flight and drops a pending result.
func (s *Service) Cancel() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.pending = nil
}

type notesOutput struct {
	Notes []Note `json:"notes"`
}

func (s *Service) generate(ctx context.Context, out session.Outcome, missed []session.AnswerRecord) (*Notes, error) {
	ctx = llm.WithPurpose(ctx, "study-notes")
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserPrompt(buildUserMessage(out.LevelID, missed)),
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study notes generation: %w", err)
	}

	var parsed notesOutput
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse study notes response: %w", err)
	}

	return &Notes{
		SessionID:   out.SessionID,
		LevelID:     out.LevelID,
		Items:       parsed.Notes,
		GeneratedAt: time.Now(),
	}, nil
}
