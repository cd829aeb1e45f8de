package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/inbox-assistant/internal/domain"
	"github.com/spec-kit/inbox-assistant/internal/events"
	"github.com/spec-kit/inbox-assistant/internal/persistence"
	"github.com/spec-kit/inbox-assistant/internal/repository"
)

const summaryCacheKey = "metrics:summary"

// MetricsService serves the dashboard summary, caching it in Redis for a
// short TTL and dropping the cache whenever tickets change.
type MetricsService struct {
	repo       repository.MetricsRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	logger     *zap.Logger
	ttl        time.Duration
}

// MetricsDependencies bundles collaborators for the metrics service.
type MetricsDependencies struct {
	MetricsRepo repository.MetricsRepository
	Cache       *persistence.Redis
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	CacheTTL    time.Duration
}

// NewMetricsService constructs the service.
func NewMetricsService(deps MetricsDependencies) *MetricsService {
	return &MetricsService{
		repo:       deps.MetricsRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		ttl:        deps.CacheTTL,
	}
}

// Summary returns the dashboard aggregates, preferring the cached copy.
// Cache failures degrade to a direct query, never to an error.
func (s *MetricsService) Summary(ctx context.Context) (*domain.MetricsSummary, error) {
	if cached, err := s.cache.GetString(ctx, summaryCacheKey); err != nil {
		s.logger.Warn("metrics cache read failed", zap.Error(err))
	} else if cached != "" {
		var summary domain.MetricsSummary
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(summary); err == nil {
		if err := s.cache.SetString(ctx, summaryCacheKey, string(encoded), s.ttl); err != nil {
			s.logger.Warn("metrics cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}

// RegisterHandlers subscribes cache invalidation to ticket mutations.
func (s *MetricsService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventTicketCreated, s.handleTicketMutation)
	s.dispatcher.Subscribe(events.EventTicketUpdated, s.handleTicketMutation)
	s.dispatcher.Subscribe(events.EventTicketDeleted, s.handleTicketMutation)
}

func (s *MetricsService) handleTicketMutation(ctx context.Context, event events.Event) error {
	if err := s.cache.Delete(ctx, summaryCacheKey); err != nil {
		s.logger.Warn("metrics cache invalidation failed",
			zap.String("event_type", string(event.Type)), zap.Error(err))
		return err
	}
	s.logger.Debug("metrics cache invalidated", zap.String("event_type", string(event.Type)))
	return nil
}
