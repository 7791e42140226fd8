package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type kvRepo struct {
	db *sql.DB
	sb *entsql.DialectBuilder
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := r.sb.Select("value").
		From(entsql.Table(tableKV)).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	query, args := r.sb.Insert(tableKV).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
