package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix   = "lexiz:"
	redisAttemptsKey = redisKeyPrefix + "attempts"
	redisEventsKey   = redisKeyPrefix + "llm_requests"

	// MaxRedisAttempts caps the attempt list kept in Redis.
	MaxRedisAttempts = 500
)

// RedisStore is the Redis backend. Keys are namespaced under "lexiz:".
type RedisStore struct {
	client *redis.Client
}

// OpenRedis connects to the Redis server at url (redis://host:port/db)
// and verifies it with a ping.
func OpenRedis(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(client), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) KV() KV                { return s }
func (s *RedisStore) Attempts() AttemptRepo { return s }
func (s *RedisStore) Events() EventRepo     { return s }

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) AppendAttempt(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal attempt: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, redisAttemptsKey, data)
	pipe.LTrim(ctx, redisAttemptsKey, 0, MaxRedisAttempts-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (s *RedisStore) RecentAttempts(ctx context.Context, q AttemptQuery) ([]Attempt, error) {
	raw, err := s.client.LRange(ctx, redisAttemptsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	all := make([]Attempt, 0, len(raw))
	for _, r := range raw {
		var a Attempt
		if err := json.Unmarshal([]byte(r), &a); err != nil {
			return nil, fmt.Errorf("decode attempt: %w", err)
		}
		all = append(all, a)
	}
	return filterAttempts(all, q), nil
}

func (s *RedisStore) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	payload, err := json.Marshal(LLMRequestEvent{LLMRequestEventData: data, CreatedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal LLM request event: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, redisEventsKey, payload)
	pipe.LTrim(ctx, redisEventsKey, 0, MaxRedisAttempts-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (s *RedisStore) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	raw, err := s.client.LRange(ctx, redisEventsKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	out := make([]LLMRequestEvent, 0, len(raw))
	for _, r := range raw {
		var e LLMRequestEvent
		if err := json.Unmarshal([]byte(r), &e); err != nil {
			return nil, fmt.Errorf("decode LLM request event: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
