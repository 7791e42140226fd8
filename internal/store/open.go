package store

import (
	"context"
	"fmt"
)

// Backend kinds accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// OpenBackend opens the backend named by kind. dbPath is used by sqlite
// and redisURL by redis.
func OpenBackend(ctx context.Context, kind, dbPath, redisURL string) (Backend, error) {
	switch kind {
	case "", BackendSQLite:
		s, err := Open(dbPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendRedis:
		s, err := OpenRedis(ctx, redisURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", kind)
	}
}
