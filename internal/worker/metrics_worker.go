package worker

import (
	"github.com/spec-kit/inbox-assistant/internal/service"
)

// StartMetricsWorker registers the cache-invalidation handlers that keep
// the dashboard summary fresh.
func StartMetricsWorker(metricsService *service.MetricsService) {
	if metricsService == nil {
		return
	}
	metricsService.RegisterHandlers()
}
