package dto

import (
	"time"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

// CreateTicketRequest payload. Shape matches one flattened extraction
// draft plus an optional status.
type CreateTicketRequest struct {
	Status          domain.TicketStatus   `json:"status"`
	ContactName     *string               `json:"contact_name"`
	ContactEmail    *string               `json:"contact_email"`
	ContactPhone    *string               `json:"contact_phone"`
	Channel         domain.Channel        `json:"channel"`
	Language        string                `json:"language"`
	Intent          string                `json:"intent"`
	Priority        domain.TicketPriority `json:"priority"`
	Entities        []domain.Entity       `json:"entities"`
	MessageRaw      string                `json:"message_raw"`
	ReplySuggestion string                `json:"reply_suggestion"`
}

// UpdateTicketRequest payload; absent fields are left unchanged.
type UpdateTicketRequest struct {
	Status          *domain.TicketStatus   `json:"status"`
	ContactName     *string                `json:"contact_name"`
	ContactEmail    *string                `json:"contact_email"`
	ContactPhone    *string                `json:"contact_phone"`
	Channel         *domain.Channel        `json:"channel"`
	Language        *string                `json:"language"`
	Intent          *string                `json:"intent"`
	Priority        *domain.TicketPriority `json:"priority"`
	Entities        []domain.Entity        `json:"entities"`
	MessageRaw      *string                `json:"message_raw"`
	ReplySuggestion *string                `json:"reply_suggestion"`
}

// TicketResponse is the wire shape of one persisted ticket.
type TicketResponse struct {
	ID              int64                 `json:"id"`
	Status          domain.TicketStatus   `json:"status"`
	ContactName     *string               `json:"contact_name"`
	ContactEmail    *string               `json:"contact_email"`
	ContactPhone    *string               `json:"contact_phone"`
	Channel         domain.Channel        `json:"channel"`
	Language        string                `json:"language"`
	Intent          string                `json:"intent"`
	Priority        domain.TicketPriority `json:"priority"`
	Entities        []domain.Entity       `json:"entities"`
	MessageRaw      string                `json:"message_raw"`
	ReplySuggestion string                `json:"reply_suggestion"`
	CreatedAt       time.Time             `json:"created_at"`
}

// FromTicket maps a domain ticket onto its wire shape.
func FromTicket(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:              ticket.ID,
		Status:          ticket.Status,
		ContactName:     ticket.ContactName,
		ContactEmail:    ticket.ContactEmail,
		ContactPhone:    ticket.ContactPhone,
		Channel:         ticket.Channel,
		Language:        ticket.Language,
		Intent:          ticket.Intent,
		Priority:        ticket.Priority,
		Entities:        ticket.Entities,
		MessageRaw:      ticket.MessageRaw,
		ReplySuggestion: ticket.ReplySuggestion,
		CreatedAt:       ticket.CreatedAt,
	}
}
