package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inbox-assistant/internal/api/dto"
	"github.com/spec-kit/inbox-assistant/internal/service"
	apperrors "github.com/spec-kit/inbox-assistant/pkg/util/errorutil"
)

// ExtractHandler exposes the message-extraction endpoint.
type ExtractHandler struct {
	service *service.ExtractionService
}

// NewExtractHandler constructs handler.
func NewExtractHandler(extractionService *service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{service: extractionService}
}

// Extract POST /api/ai/extract.
func (h *ExtractHandler) Extract(c *fiber.Ctx) error {
	var req dto.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewInvalidInput("message is required and must be a non-empty string")
	}

	draft, metadata, err := h.service.Extract(c.UserContext(), req.Message)
	if err != nil {
		return err
	}

	return c.JSON(dto.ExtractResponse{
		Success:  true,
		Data:     *draft,
		Metadata: *metadata,
	})
}
