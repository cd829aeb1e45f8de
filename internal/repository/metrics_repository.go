package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

// MetricsRepository aggregates dashboard counts over the tickets table.
type MetricsRepository interface {
	Summary(ctx context.Context) (*domain.MetricsSummary, error)
}

type metricsRepository struct {
	pool *pgxpool.Pool
}

// NewMetricsRepository instantiates repository.
func NewMetricsRepository(pool *pgxpool.Pool) MetricsRepository {
	return &metricsRepository{pool: pool}
}

func (r *metricsRepository) Summary(ctx context.Context) (*domain.MetricsSummary, error) {
	summary := &domain.MetricsSummary{
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
		TopIntents: []domain.IntentCount{},
		Trend:      []domain.TrendPoint{},
	}

	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)::int FROM tickets`).Scan(&summary.Total); err != nil {
		return nil, err
	}

	if err := r.groupCounts(ctx, `SELECT status, COUNT(*)::int FROM tickets GROUP BY status`, summary.ByStatus); err != nil {
		return nil, err
	}
	if err := r.groupCounts(ctx, `SELECT priority, COUNT(*)::int FROM tickets GROUP BY priority`, summary.ByPriority); err != nil {
		return nil, err
	}

	intentRows, err := r.pool.Query(ctx, `
        SELECT COALESCE(NULLIF(intent, ''), 'unknown') AS intent, COUNT(*)::int AS count
        FROM tickets GROUP BY 1 ORDER BY count DESC LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer intentRows.Close()
	for intentRows.Next() {
		var ic domain.IntentCount
		if err := intentRows.Scan(&ic.Intent, &ic.Count); err != nil {
			return nil, err
		}
		summary.TopIntents = append(summary.TopIntents, ic)
	}
	if err := intentRows.Err(); err != nil {
		return nil, err
	}

	trendRows, err := r.pool.Query(ctx, `
        SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day, COUNT(*)::int AS count
        FROM tickets WHERE created_at >= now() - interval '30 days'
        GROUP BY day ORDER BY day`)
	if err != nil {
		return nil, err
	}
	defer trendRows.Close()
	for trendRows.Next() {
		var tp domain.TrendPoint
		if err := trendRows.Scan(&tp.Day, &tp.Count); err != nil {
			return nil, err
		}
		summary.Trend = append(summary.Trend, tp)
	}
	if err := trendRows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *metricsRepository) groupCounts(ctx context.Context, query string, dest map[string]int) error {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	return collectCounts(rows, dest)
}

func collectCounts(rows pgx.Rows, dest map[string]int) error {
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return err
		}
		dest[key] = count
	}
	return rows.Err()
}
