package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inbox-assistant/internal/domain"
	"github.com/spec-kit/inbox-assistant/internal/events"
	"github.com/spec-kit/inbox-assistant/internal/persistence"
)

type fakeMetricsRepo struct {
	calls   int
	summary *domain.MetricsSummary
}

func (f *fakeMetricsRepo) Summary(ctx context.Context) (*domain.MetricsSummary, error) {
	f.calls++
	return f.summary, nil
}

func TestMetricsSummaryQueriesRepo(t *testing.T) {
	repo := &fakeMetricsRepo{summary: &domain.MetricsSummary{
		Total:      3,
		ByStatus:   map[string]int{"open": 2, "closed": 1},
		ByPriority: map[string]int{"high": 1, "low": 2},
		TopIntents: []domain.IntentCount{{Intent: "complaint", Count: 2}},
		Trend:      []domain.TrendPoint{{Day: "2026-08-28", Count: 3}},
	}}
	svc := NewMetricsService(MetricsDependencies{
		MetricsRepo: repo,
		Cache:       &persistence.Redis{},
		Logger:      zap.NewNop(),
	})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.ByStatus["open"])
	assert.Equal(t, 1, repo.calls)
}

func TestMetricsCacheInvalidationOnTicketEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewMetricsService(MetricsDependencies{
		MetricsRepo: &fakeMetricsRepo{summary: &domain.MetricsSummary{}},
		Cache:       &persistence.Redis{},
		Dispatcher:  dispatcher,
		Logger:      zap.NewNop(),
	})
	svc.RegisterHandlers()

	// Handlers must tolerate an unreachable cache without surfacing errors
	// to the publishing side.
	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{TicketID: 1},
	})
	require.NoError(t, err)
}
