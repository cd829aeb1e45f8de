package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inbox-assistant/internal/service"
)

// MetricsHandler serves the dashboard summary endpoint.
type MetricsHandler struct {
	service *service.MetricsService
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metricsService *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: metricsService}
}

// Summary GET /api/metrics/summary.
func (h *MetricsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
