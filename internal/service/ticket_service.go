package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inbox-assistant/internal/domain"
	"github.com/spec-kit/inbox-assistant/internal/events"
	"github.com/spec-kit/inbox-assistant/internal/repository"
	apperrors "github.com/spec-kit/inbox-assistant/pkg/util/errorutil"
)

// TicketService coordinates ticket CRUD workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes ticket creation payload, typically the
// flattened output of one extraction plus an optional status.
type TicketCreateInput struct {
	Status          domain.TicketStatus
	ContactName     *string
	ContactEmail    *string
	ContactPhone    *string
	Channel         domain.Channel
	Language        string
	Intent          string
	Priority        domain.TicketPriority
	Entities        []domain.Entity
	MessageRaw      string
	ReplySuggestion string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket persists a new ticket, applying the record-level defaults.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Status:          input.Status,
		ContactName:     input.ContactName,
		ContactEmail:    input.ContactEmail,
		ContactPhone:    input.ContactPhone,
		Channel:         input.Channel,
		Language:        input.Language,
		Intent:          input.Intent,
		Priority:        input.Priority,
		Entities:        input.Entities,
		MessageRaw:      input.MessageRaw,
		ReplySuggestion: input.ReplySuggestion,
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusOpen
	}
	if ticket.Channel == "" {
		ticket.Channel = domain.ChannelUnknown
	}
	if ticket.Language == "" {
		ticket.Language = "en"
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.TicketPriorityLow
	}
	if ticket.Entities == nil {
		ticket.Entities = []domain.Entity{}
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID: ticket.ID,
			Status:   ticket.Status,
			Priority: ticket.Priority,
			Channel:  ticket.Channel,
			Language: ticket.Language,
		},
	})
	return ticket, nil
}

// ListTickets returns tickets matching the filter, newest first.
func (s *TicketService) ListTickets(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// GetTicket fetches one ticket by ID.
func (s *TicketService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapTicketError(err)
	}
	return ticket, nil
}

// UpdateTicket applies a partial update; unset fields are left unchanged.
func (s *TicketService) UpdateTicket(ctx context.Context, id int64, update repository.TicketUpdate) (*domain.Ticket, error) {
	ticket, err := s.tickets.Update(ctx, id, update)
	if err != nil {
		return nil, mapTicketError(err)
	}

	s.publish(ctx, events.Event{
		Type: events.EventTicketUpdated,
		Payload: events.TicketUpdatedPayload{
			TicketID: ticket.ID,
			Status:   ticket.Status,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// DeleteTicket removes a ticket, returning the deleted record.
func (s *TicketService) DeleteTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.Delete(ctx, id)
	if err != nil {
		return nil, mapTicketError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventTicketDeleted,
		Payload: events.TicketDeletedPayload{TicketID: ticket.ID},
	})
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func mapTicketError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("ticket", nil)
	}
	return err
}
