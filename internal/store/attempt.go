package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

type attemptRepo struct {
	db *sql.DB
	sb *entsql.DialectBuilder
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}

	query, args := r.sb.Insert(tableAttempts).
		Columns("id", "session_id", "level_id", "score", "total", "percentage", "passed", "recorded_at").
		Values(a.ID, a.SessionID, a.LevelID, a.Score, a.Total, a.Percentage, a.Passed, a.RecordedAt.UnixMilli()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, q AttemptQuery) ([]Attempt, error) {
	sel := r.sb.Select("id", "session_id", "level_id", "score", "total", "percentage", "passed", "recorded_at").
		From(entsql.Table(tableAttempts)).
		OrderBy(entsql.Desc("recorded_at"), entsql.Desc("rowid"))
	if q.LevelID != 0 {
		sel = sel.Where(entsql.EQ("level_id", q.LevelID))
	}
	if q.Limit > 0 {
		sel = sel.Limit(q.Limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var recorded int64
		if err := rows.Scan(&a.ID, &a.SessionID, &a.LevelID, &a.Score, &a.Total, &a.Percentage, &a.Passed, &recorded); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.RecordedAt = time.UnixMilli(recorded)
		out = append(out, a)
	}
	return out, rows.Err()
}
