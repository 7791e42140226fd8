package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/lexiz/internal/logging"
	"github.com/abhisek/lexiz/internal/session"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/vocab"
)

// ErrLevelLocked is returned for a level whose predecessor is not completed.
var ErrLevelLocked = errors.New("level is locked")

// StorageKey is the key the table is stored under.
const StorageKey = "lexiz.progress"

// Service owns the in-memory progress table and persists it after every
// change. Storage failures are logged and never returned; the in-memory
// table stays authoritative for the running process.
type Service struct {
	kv         store.KV
	attempts   store.AttemptRepo
	log        *logging.Logger
	levelCount int
	table      Table
}

// RecordResult describes the effect of one recorded attempt.
type RecordResult struct {
	Level          LevelProgress
	Percentage     int
	Feedback       Feedback
	NewlyCompleted bool
}

// NewService creates a progress service with a default table. Call Load
// to read persisted state. attempts may be nil.
func NewService(kv store.KV, attempts store.AttemptRepo, log *logging.Logger, levelCount int) *Service {
	if log == nil {
		log = logging.Nop()
	}
	if levelCount <= 0 {
		levelCount = DefaultLevelCount
	}
	return &Service{
		kv:         kv,
		attempts:   attempts,
		log:        log.With("component", "progress"),
		levelCount: levelCount,
		table:      NewTable(levelCount),
	}
}

// Load reads the stored table. A missing, unreadable or corrupt blob
// leaves the default table in place.
func (s *Service) Load(ctx context.Context) Table {
	blob, found, err := s.kv.Get(ctx, StorageKey)
	switch {
	case err != nil:
		s.log.Warn("load progress failed, using defaults", "err", err)
		s.table = NewTable(s.levelCount)
	case !found:
		s.table = NewTable(s.levelCount)
	default:
		t, err := Decode(blob)
		if err != nil {
			s.log.Warn("stored progress is corrupt, using defaults", "err", err)
			t = NewTable(s.levelCount)
		}
		for id := 1; id <= s.levelCount; id++ {
			if _, ok := t[id]; !ok {
				t[id] = &LevelProgress{}
			}
		}
		s.table = t
	}
	return s.table
}

// Table returns the current table. Callers must not mutate it.
func (s *Service) Table() Table {
	return s.table
}

// LevelCount returns the number of levels tracked.
func (s *Service) LevelCount() int {
	return s.levelCount
}

// Unlocked reports whether levelID is playable.
func (s *Service) Unlocked(levelID int) bool {
	return levelID >= 1 && levelID <= s.levelCount && Unlocked(s.table, levelID)
}

// Playable returns nil if levelID exists and is unlocked.
func (s *Service) Playable(levelID int) error {
	if levelID < 1 || levelID > s.levelCount {
		return fmt.Errorf("level %d: %w", levelID, vocab.ErrUnknownLevel)
	}
	if !Unlocked(s.table, levelID) {
		return fmt.Errorf("level %d: %w", levelID, ErrLevelLocked)
	}
	return nil
}

// Summary aggregates the current table.
func (s *Service) Summary(questionsPerQuiz int) Summary {
	return Summarize(s.table, s.levelCount, questionsPerQuiz)
}

// Record folds a completed session into the table, persists the table and
// appends to the attempt log.
func (s *Service) Record(ctx context.Context, out session.Outcome) RecordResult {
	wasCompleted := s.table.Get(out.LevelID).Completed
	p := Record(s.table, out.LevelID, out.Score, out.TotalQuestions)
	pct := Percentage(out.Score, out.TotalQuestions)
	fb := FeedbackFor(pct)

	s.save(ctx)

	if s.attempts != nil {
		err := s.attempts.AppendAttempt(ctx, store.Attempt{
			SessionID:  out.SessionID,
			LevelID:    out.LevelID,
			Score:      out.Score,
			Total:      out.TotalQuestions,
			Percentage: pct,
			Passed:     pct >= PassThreshold,
		})
		if err != nil {
			s.log.Warn("append attempt failed", "level", out.LevelID, "err", err)
		}
	}

	s.log.Info("attempt recorded",
		"level", out.LevelID, "score", out.Score, "total", out.TotalQuestions,
		"pct", pct, "completed", p.Completed)

	return RecordResult{
		Level:          *p,
		Percentage:     pct,
		Feedback:       fb,
		NewlyCompleted: p.Completed && !wasCompleted,
	}
}

// Reset replaces the table with defaults and persists it.
func (s *Service) Reset(ctx context.Context) error {
	s.table = NewTable(s.levelCount)
	blob, err := Encode(s.table)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, StorageKey, blob)
}

func (s *Service) save(ctx context.Context) {
	blob, err := Encode(s.table)
	if err != nil {
		s.log.Warn("encode progress failed", "err", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, blob); err != nil {
		s.log.Warn("save progress failed", "err", err)
	}
}
