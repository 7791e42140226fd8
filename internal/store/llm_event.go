package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on the llm_requests table.
type eventRepo struct {
	db *sql.DB
	sb *entsql.DialectBuilder
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	query, args := r.sb.Insert(tableLLMRequests).
		Columns("provider", "model", "purpose", "input_tokens", "output_tokens",
			"latency_ms", "success", "error_message", "created_at").
		Values(data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
			data.LatencyMs, data.Success, data.ErrorMessage, time.Now().UnixMilli()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	sel := r.sb.Select("id", "provider", "model", "purpose", "input_tokens", "output_tokens",
		"latency_ms", "success", "error_message", "created_at").
		From(entsql.Table(tableLLMRequests)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		var created int64
		if err := rows.Scan(&e.ID, &e.Provider, &e.Model, &e.Purpose, &e.InputTokens, &e.OutputTokens,
			&e.LatencyMs, &e.Success, &e.ErrorMessage, &created); err != nil {
			return nil, fmt.Errorf("scan LLM request event: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created)
		out = append(out, e)
	}
	return out, rows.Err()
}
