package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
)

// EventStore is the append-only ride event log.
// The service layer depends on this interface, not on a concrete driver.
type EventStore interface {
	// Append persists e. Returns domain.ErrConflict if e.EventID already exists.
	// There is no update or delete.
	Append(ctx context.Context, e event.Event) error

	// ListByAggregate returns the events of one ride ordered by version, then
	// by append order.
	ListByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]event.Event, error)

	// ListByUser returns every event owned by userID ordered by timestamp,
	// then by append order.
	ListByUser(ctx context.Context, userID string) ([]event.Event, error)
}

// pgEventStore is the Postgres implementation of EventStore.
type pgEventStore struct {
	db db
}

// NewEventStore constructs an EventStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEventStore(db db) EventStore {
	return &pgEventStore{db: db}
}

const eventColumns = `event_id, aggregate_id, aggregate_type, event_type, event_data, occurred_at, version, user_id`

// Append inserts one row. ON CONFLICT DO NOTHING turns a duplicate event id
// into zero affected rows instead of an aborted transaction.
func (s *pgEventStore) Append(ctx context.Context, e event.Event) error {
	rec, err := event.Encode(e)
	if err != nil {
		return fmt.Errorf("repo.EventStore.Append: %w", err)
	}

	const q = `
		INSERT INTO events (` + eventColumns + `)
		VALUES (@event_id, @aggregate_id, @aggregate_type, @event_type, @event_data, @occurred_at, @version, @user_id)
		ON CONFLICT (event_id) DO NOTHING`

	tag, err := s.db.Exec(ctx, q, pgx.NamedArgs{
		"event_id":       rec.EventID,
		"aggregate_id":   rec.AggregateID,
		"aggregate_type": rec.AggregateType,
		"event_type":     string(rec.EventType),
		"event_data":     rec.Data,
		"occurred_at":    rec.Timestamp,
		"version":        rec.Version,
		"user_id":        rec.UserID,
	})
	if err != nil {
		return fmt.Errorf("repo.EventStore.Append: %w", mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EventStore.Append: event %s: %w", rec.EventID, domain.ErrConflict)
	}
	return nil
}

// ListByAggregate returns one ride's events in version order.
func (s *pgEventStore) ListByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]event.Event, error) {
	const q = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE aggregate_id = @aggregate_id
		ORDER BY version, seq`

	events, err := s.list(ctx, q, pgx.NamedArgs{"aggregate_id": aggregateID})
	if err != nil {
		return nil, fmt.Errorf("repo.EventStore.ListByAggregate: %w", err)
	}
	return events, nil
}

// ListByUser returns a user's events in time order.
func (s *pgEventStore) ListByUser(ctx context.Context, userID string) ([]event.Event, error) {
	const q = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE user_id = @user_id
		ORDER BY occurred_at, seq`

	events, err := s.list(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.EventStore.ListByUser: %w", err)
	}
	return events, nil
}

func (s *pgEventStore) list(ctx context.Context, q string, args pgx.NamedArgs) ([]event.Event, error) {
	rows, err := s.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		e, err := scanPgEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return events, nil
}

// scanPgEvent maps one events row back into a decoded event.
func scanPgEvent(s scanner) (event.Event, error) {
	var (
		rec         event.Record
		eventID     pgtype.UUID
		aggregateID pgtype.UUID
		eventType   string
	)
	err := s.Scan(&eventID, &aggregateID, &rec.AggregateType, &eventType, &rec.Data, &rec.Timestamp, &rec.Version, &rec.UserID)
	if err != nil {
		return event.Event{}, err
	}
	rec.EventID = uuid.UUID(eventID.Bytes)
	rec.AggregateID = uuid.UUID(aggregateID.Bytes)
	rec.EventType = event.Type(eventType)
	return event.Decode(rec)
}
