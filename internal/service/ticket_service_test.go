package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inbox-assistant/internal/domain"
	"github.com/spec-kit/inbox-assistant/internal/events"
	"github.com/spec-kit/inbox-assistant/internal/repository"
	apperrors "github.com/spec-kit/inbox-assistant/pkg/util/errorutil"
)

// fakeTicketRepo implements repository.TicketRepository in memory.
type fakeTicketRepo struct {
	created *domain.Ticket
	byID    map[int64]*domain.Ticket
	nextID  int64
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byID: map[int64]*domain.Ticket{}, nextID: 1}
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	ticket.ID = f.nextID
	f.nextID++
	f.created = ticket
	f.byID[ticket.ID] = ticket
	return nil
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return ticket, nil
}

func (f *fakeTicketRepo) ListWithFilter(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range f.byID {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTicketRepo) Update(ctx context.Context, id int64, update repository.TicketUpdate) (*domain.Ticket, error) {
	ticket, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if update.Status != nil {
		ticket.Status = *update.Status
	}
	if update.Priority != nil {
		ticket.Priority = *update.Priority
	}
	return ticket, nil
}

func (f *fakeTicketRepo) Delete(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(f.byID, id)
	return ticket, nil
}

func TestCreateTicketAppliesDefaults(t *testing.T) {
	repo := newFakeTicketRepo()
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventTicketCreated, func(ctx context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})
	svc := NewTicketService(TicketDependencies{TicketRepo: repo, Dispatcher: dispatcher})

	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		MessageRaw: "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.ChannelUnknown, ticket.Channel)
	assert.Equal(t, "en", ticket.Language)
	assert.Equal(t, domain.TicketPriorityLow, ticket.Priority)
	assert.Equal(t, []domain.Entity{}, ticket.Entities)
	require.Len(t, published, 1)
	assert.Equal(t, events.EventTicketCreated, published[0].Type)
}

func TestGetTicketNotFound(t *testing.T) {
	svc := NewTicketService(TicketDependencies{TicketRepo: newFakeTicketRepo()})

	_, err := svc.GetTicket(context.Background(), 99)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUpdateTicketPartial(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := NewTicketService(TicketDependencies{TicketRepo: repo})

	created, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		MessageRaw: "hello",
		Priority:   domain.TicketPriorityMedium,
	})
	require.NoError(t, err)

	closed := domain.TicketStatusClosed
	updated, err := svc.UpdateTicket(context.Background(), created.ID, repository.TicketUpdate{Status: &closed})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusClosed, updated.Status)
	assert.Equal(t, domain.TicketPriorityMedium, updated.Priority, "unset fields stay unchanged")
}

func TestDeleteTicketReturnsRecord(t *testing.T) {
	repo := newFakeTicketRepo()
	svc := NewTicketService(TicketDependencies{TicketRepo: repo})

	created, err := svc.CreateTicket(context.Background(), TicketCreateInput{MessageRaw: "bye"})
	require.NoError(t, err)

	deleted, err := svc.DeleteTicket(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetTicket(context.Background(), created.ID)
	require.Error(t, err)
}
