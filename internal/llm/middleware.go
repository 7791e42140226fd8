package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/store"
)

// RetryProvider retries transient errors with exponential backoff and
// jitter. Invalid responses get one extra try.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    *logging.Logger
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg, log: log}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classify(err) {
		case classFatal:
			return nil, err
		case classInvalid:
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}
		wait := r.backoff(attempt, err)
		r.log.Debug("llm retry", "attempt", attempt+1, "wait", wait, "err", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1) // ±20% jitter
	return time.Duration(math.Max(wait, 0))
}

// LoggingProvider writes one log line and one store event per request.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	log      *logging.Logger
}

// WithLogging wraps a Provider with request logging. events may be nil.
func WithLogging(p Provider, provider string, events store.EventRepo, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &LoggingProvider{inner: p, provider: provider, events: events, log: log.With("component", "llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.log.Warn("llm request failed", "purpose", data.Purpose, "model", data.Model, "latency_ms", data.LatencyMs, "err", err)
	} else {
		l.log.Info("llm request", "purpose", data.Purpose, "model", data.Model, "latency_ms", data.LatencyMs,
			"input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	if l.events != nil {
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
			l.log.Warn("record llm event failed", "err", logErr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
