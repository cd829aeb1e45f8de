package events

import (
	"time"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketUpdated       EventType = "ticket_updated"
	EventTicketDeleted       EventType = "ticket_deleted"
	EventExtractionCompleted EventType = "extraction_completed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID int64                 `json:"ticket_id"`
	Status   domain.TicketStatus   `json:"status"`
	Priority domain.TicketPriority `json:"priority"`
	Channel  domain.Channel        `json:"channel"`
	Language string                `json:"language"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	TicketID int64                 `json:"ticket_id"`
	Status   domain.TicketStatus   `json:"status"`
	Priority domain.TicketPriority `json:"priority"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	TicketID int64 `json:"ticket_id"`
}

// ExtractionCompletedPayload payload.
type ExtractionCompletedPayload struct {
	PrioritySource    domain.PrioritySource `json:"priority_source"`
	RuleBasedPriority domain.TicketPriority `json:"rule_based_priority"`
	FinalPriority     domain.TicketPriority `json:"final_priority"`
	Language          string                `json:"language"`
}
