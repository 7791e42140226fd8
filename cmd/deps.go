package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/lexiz/internal/progress"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/vocab"
)

// loadVocabulary reads the configured vocabulary or the bundled one.
func loadVocabulary() (*vocab.Vocabulary, error) {
	v, err := vocab.Resolve(cfg.VocabPath)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w (fix the file or retry)", err)
	}
	return v, nil
}

// openStore opens the configured backend. Commands whose whole job is
// persistence use it and fail when storage is unavailable.
func openStore(ctx context.Context) (store.Backend, error) {
	dbPath := ""
	if cfg.StoreBackend == "" || cfg.StoreBackend == store.BackendSQLite {
		p, err := cfg.ResolveDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		dbPath = p
	}
	b, err := store.OpenBackend(ctx, cfg.StoreBackend, dbPath, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	return b, nil
}

// openStoreOrMemory is openStore for the TUI: on failure it warns and
// keeps progress in memory for this run.
func openStoreOrMemory(ctx context.Context) store.Backend {
	b, err := openStore(ctx)
	if err != nil {
		logger.Warn("store unavailable, progress will not be saved", "err", err)
		fmt.Fprintln(os.Stderr, "Warning:", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
		return store.NewMemoryStore()
	}
	return b
}

// loadProgress builds the progress service over b and reads the stored table.
func loadProgress(ctx context.Context, b store.Backend, v *vocab.Vocabulary) *progress.Service {
	svc := progress.NewService(b.KV(), b.Attempts(), logger, v.LevelCount())
	svc.Load(ctx)
	return svc
}
