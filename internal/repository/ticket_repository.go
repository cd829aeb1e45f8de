package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

// TicketFilter captures list query parameters.
type TicketFilter struct {
	Status     *domain.TicketStatus
	Priority   *domain.TicketPriority
	Language   *string
	SearchTerm *string
	Limit      int
	Offset     int
}

// TicketUpdate carries partial-update fields; nil fields are left unchanged.
type TicketUpdate struct {
	Status          *domain.TicketStatus
	ContactName     *string
	ContactEmail    *string
	ContactPhone    *string
	Channel         *domain.Channel
	Language        *string
	Intent          *string
	Priority        *domain.TicketPriority
	Entities        []domain.Entity
	MessageRaw      *string
	ReplySuggestion *string
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Update(ctx context.Context, id int64, update TicketUpdate) (*domain.Ticket, error)
	Delete(ctx context.Context, id int64) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, status, contact_name, contact_email, contact_phone,
               channel, language, intent, priority, entities, message_raw, reply_suggestion, created_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (status, contact_name, contact_email, contact_phone, channel, language,
                             intent, priority, entities, message_raw, reply_suggestion)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at`
	entities, err := marshalEntities(ticket.Entities)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, query,
		ticket.Status,
		ticket.ContactName,
		ticket.ContactEmail,
		ticket.ContactPhone,
		ticket.Channel,
		ticket.Language,
		ticket.Intent,
		ticket.Priority,
		entities,
		ticket.MessageRaw,
		ticket.ReplySuggestion,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE id=$1`, ticketColumns)
	row := r.pool.QueryRow(ctx, query, id)
	return scanTicket(row)
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("priority=$%d", len(args)))
	}
	if filter.Language != nil {
		args = append(args, *filter.Language)
		clauses = append(clauses, fmt.Sprintf("language=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.SearchTerm)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(message_raw ILIKE %s OR intent ILIKE %s OR contact_name ILIKE %s OR contact_email ILIKE %s)",
			placeholder, placeholder, placeholder, placeholder))
	}

	query := fmt.Sprintf(`SELECT %s FROM tickets WHERE %s ORDER BY created_at DESC`,
		ticketColumns, strings.Join(clauses, " AND "))
	if filter.Limit > 0 {
		offset := filter.Offset
		if offset < 0 {
			offset = 0
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) Update(ctx context.Context, id int64, update TicketUpdate) (*domain.Ticket, error) {
	query := fmt.Sprintf(`
        UPDATE tickets SET
            status = COALESCE($1, status),
            contact_name = COALESCE($2, contact_name),
            contact_email = COALESCE($3, contact_email),
            contact_phone = COALESCE($4, contact_phone),
            channel = COALESCE($5, channel),
            language = COALESCE($6, language),
            intent = COALESCE($7, intent),
            priority = COALESCE($8, priority),
            entities = COALESCE($9::jsonb, entities),
            message_raw = COALESCE($10, message_raw),
            reply_suggestion = COALESCE($11, reply_suggestion)
        WHERE id=$12
        RETURNING %s`, ticketColumns)

	var entities any
	if update.Entities != nil {
		encoded, err := marshalEntities(update.Entities)
		if err != nil {
			return nil, err
		}
		entities = encoded
	}

	row := r.pool.QueryRow(ctx, query,
		update.Status,
		update.ContactName,
		update.ContactEmail,
		update.ContactPhone,
		update.Channel,
		update.Language,
		update.Intent,
		update.Priority,
		entities,
		update.MessageRaw,
		update.ReplySuggestion,
		id,
	)
	return scanTicket(row)
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) (*domain.Ticket, error) {
	query := fmt.Sprintf(`DELETE FROM tickets WHERE id=$1 RETURNING %s`, ticketColumns)
	row := r.pool.QueryRow(ctx, query, id)
	return scanTicket(row)
}

func marshalEntities(entities []domain.Entity) ([]byte, error) {
	if entities == nil {
		entities = []domain.Entity{}
	}
	encoded, err := json.Marshal(entities)
	if err != nil {
		return nil, fmt.Errorf("marshal entities: %w", err)
	}
	return encoded, nil
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	var entities []byte
	if err := row.Scan(
		&ticket.ID,
		&ticket.Status,
		&ticket.ContactName,
		&ticket.ContactEmail,
		&ticket.ContactPhone,
		&ticket.Channel,
		&ticket.Language,
		&ticket.Intent,
		&ticket.Priority,
		&entities,
		&ticket.MessageRaw,
		&ticket.ReplySuggestion,
		&ticket.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := unmarshalEntities(entities, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		var entities []byte
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Status,
			&ticket.ContactName,
			&ticket.ContactEmail,
			&ticket.ContactPhone,
			&ticket.Channel,
			&ticket.Language,
			&ticket.Intent,
			&ticket.Priority,
			&entities,
			&ticket.MessageRaw,
			&ticket.ReplySuggestion,
			&ticket.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := unmarshalEntities(entities, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func unmarshalEntities(raw []byte, ticket *domain.Ticket) error {
	ticket.Entities = []domain.Entity{}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &ticket.Entities); err != nil {
		return fmt.Errorf("unmarshal entities for ticket %d: %w", ticket.ID, err)
	}
	return nil
}
