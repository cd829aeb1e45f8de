package dto

import "github.com/spec-kit/inbox-assistant/internal/domain"

// ExtractRequest payload.
type ExtractRequest struct {
	Message string `json:"message"`
}

// ExtractResponse is the caller-facing result of one extraction.
type ExtractResponse struct {
	Success  bool                      `json:"success"`
	Data     domain.TicketDraft        `json:"data"`
	Metadata domain.ExtractionMetadata `json:"metadata"`
}
