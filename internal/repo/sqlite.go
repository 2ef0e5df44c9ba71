package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
)

// sqlDB is the minimal interface satisfied by *sql.DB, *sql.Conn and *sql.Tx.
// The SQLite stores use database/sql because that is the interface the
// modernc.org/sqlite driver implements.
type sqlDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// OpenSQLite opens a SQLite database through the modernc.org/sqlite driver
// with WAL and a busy timeout. Use ":memory:" for an ephemeral database; it
// is limited to one connection so every query sees the same data.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: ping: %w", err)
	}
	return db, nil
}

// ---- events ----------------------------------------------------------------

type sqliteEventStore struct {
	db sqlDB
}

// NewSQLiteEventStore constructs an EventStore backed by SQLite.
func NewSQLiteEventStore(db sqlDB) EventStore {
	return &sqliteEventStore{db: db}
}

func (s *sqliteEventStore) Append(ctx context.Context, e event.Event) error {
	rec, err := event.Encode(e)
	if err != nil {
		return fmt.Errorf("repo.SQLiteEventStore.Append: %w", err)
	}

	const q = `
		INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id) DO NOTHING`

	res, err := s.db.ExecContext(ctx, q,
		rec.EventID.String(), rec.AggregateID.String(), rec.AggregateType, string(rec.EventType),
		string(rec.Data), rec.Timestamp.UnixNano(), rec.Version, rec.UserID)
	if err != nil {
		return fmt.Errorf("repo.SQLiteEventStore.Append: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repo.SQLiteEventStore.Append: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("repo.SQLiteEventStore.Append: event %s: %w", rec.EventID, domain.ErrConflict)
	}
	return nil
}

func (s *sqliteEventStore) ListByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]event.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE aggregate_id = ? ORDER BY version, seq`

	events, err := s.list(ctx, q, aggregateID.String())
	if err != nil {
		return nil, fmt.Errorf("repo.SQLiteEventStore.ListByAggregate: %w", err)
	}
	return events, nil
}

func (s *sqliteEventStore) ListByUser(ctx context.Context, userID string) ([]event.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE user_id = ? ORDER BY occurred_at, seq`

	events, err := s.list(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("repo.SQLiteEventStore.ListByUser: %w", err)
	}
	return events, nil
}

func (s *sqliteEventStore) list(ctx context.Context, q string, arg any) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		var (
			rec                  event.Record
			eventID, aggregateID string
			eventType, data      string
			occurredAt           int64
		)
		if err := rows.Scan(&eventID, &aggregateID, &rec.AggregateType, &eventType, &data, &occurredAt, &rec.Version, &rec.UserID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if rec.EventID, err = uuid.Parse(eventID); err != nil {
			return nil, fmt.Errorf("event_id: %w", err)
		}
		if rec.AggregateID, err = uuid.Parse(aggregateID); err != nil {
			return nil, fmt.Errorf("aggregate_id: %w", err)
		}
		rec.EventType = event.Type(eventType)
		rec.Data = []byte(data)
		rec.Timestamp = time.Unix(0, occurredAt).UTC()

		e, err := event.Decode(rec)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return events, nil
}

// ---- projections -----------------------------------------------------------

type sqliteProjectionStore struct {
	db    sqlDB
	clock domain.Clock
}

// NewSQLiteProjectionStore constructs a ProjectionStore backed by SQLite.
func NewSQLiteProjectionStore(db sqlDB, clock domain.Clock) ProjectionStore {
	return &sqliteProjectionStore{db: db, clock: clock}
}

const sqliteInsertProjection = `
	INSERT INTO ride_projections (` + projectionColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *sqliteProjectionStore) Create(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	args, err := sqliteProjectionArgs(p)
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Create: %w", err)
	}
	res, err := s.db.ExecContext(ctx, sqliteInsertProjection+` ON CONFLICT (id) DO NOTHING`, args...)
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Create: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Create: ride %s: %w", p.ID, domain.ErrConflict)
	}
	return s.GetByID(ctx, p.ID)
}

func (s *sqliteProjectionStore) GetByID(ctx context.Context, id uuid.UUID) (domain.RideProjection, error) {
	const q = `SELECT ` + projectionColumns + ` FROM ride_projections WHERE id = ?`

	p, err := s.scan(s.db.QueryRowContext(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrNotFound
		}
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.GetByID: %w", err)
	}
	return p, nil
}

func (s *sqliteProjectionStore) ListByUser(ctx context.Context, userID string, page domain.PaginationParams) ([]domain.RideProjection, error) {
	const q = `
		SELECT ` + projectionColumns + `
		FROM ride_projections
		WHERE user_id = ? AND deletion_status = 'active'
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, q, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("repo.SQLiteProjectionStore.ListByUser: %w", err)
	}
	defer rows.Close()

	out := []domain.RideProjection{}
	for rows.Next() {
		p, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SQLiteProjectionStore.ListByUser: scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SQLiteProjectionStore.ListByUser: rows: %w", err)
	}
	return out, nil
}

func (s *sqliteProjectionStore) Update(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	args, err := sqliteProjectionArgs(p)
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Update: %w", err)
	}

	const q = `
		UPDATE ride_projections
		SET ride_date = ?, hour = ?, distance = ?, distance_unit = ?, ride_name = ?,
		    start_location = ?, end_location = ?, notes = ?, weather = ?, modified_at = ?,
		    deletion_status = ?, community_status = ?
		WHERE id = ?`

	// args order: id, user_id, ride_date ... community_status
	res, err := s.db.ExecContext(ctx, q,
		args[2], args[3], args[4], args[5], args[6], args[7], args[8], args[9], args[10], args[12],
		args[13], args[14], args[0])
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Update: %w", domain.ErrNotFound)
	}
	return s.GetByID(ctx, p.ID)
}

func (s *sqliteProjectionStore) Upsert(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	args, err := sqliteProjectionArgs(p)
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Upsert: %w", err)
	}
	q := sqliteInsertProjection + `
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id, ride_date = excluded.ride_date, hour = excluded.hour,
			distance = excluded.distance, distance_unit = excluded.distance_unit,
			ride_name = excluded.ride_name, start_location = excluded.start_location,
			end_location = excluded.end_location, notes = excluded.notes, weather = excluded.weather,
			created_at = excluded.created_at, modified_at = excluded.modified_at,
			deletion_status = excluded.deletion_status, community_status = excluded.community_status`

	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.SQLiteProjectionStore.Upsert: %w", err)
	}
	return s.GetByID(ctx, p.ID)
}

func (s *sqliteProjectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ride_projections WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("repo.SQLiteProjectionStore.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return fmt.Errorf("repo.SQLiteProjectionStore.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (s *sqliteProjectionStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	const q = `SELECT count(*) FROM ride_projections WHERE user_id = ? AND deletion_status = 'active'`

	var n int64
	if err := s.db.QueryRowContext(ctx, q, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.SQLiteProjectionStore.CountByUser: %w", err)
	}
	return n, nil
}

// sqliteProjectionArgs returns positional args in projectionColumns order.
func sqliteProjectionArgs(p domain.RideProjection) ([]any, error) {
	weather, err := marshalWeather(p.Weather)
	if err != nil {
		return nil, err
	}
	var notesArg, weatherArg, modifiedArg any
	if p.Notes != nil {
		notesArg = *p.Notes
	}
	if weather != nil {
		weatherArg = string(weather)
	}
	if p.ModifiedAt != nil {
		modifiedArg = p.ModifiedAt.UnixNano()
	}
	return []any{
		p.ID.String(),
		p.UserID,
		p.Date.String(),
		p.Hour,
		decimalText(p.Distance),
		string(p.DistanceUnit),
		p.RideName,
		p.StartLocation,
		p.EndLocation,
		notesArg,
		weatherArg,
		p.CreatedAt.UnixNano(),
		modifiedArg,
		string(p.DeletionStatus),
		string(p.CommunityStatus),
	}, nil
}

func (s *sqliteProjectionStore) scan(sc scanner) (domain.RideProjection, error) {
	var (
		p                      domain.RideProjection
		id, rideDate, distance string
		unit, deletion, comm   string
		notes, weather         sql.NullString
		createdAt              int64
		modifiedAt             sql.NullInt64
	)
	err := sc.Scan(&id, &p.UserID, &rideDate, &p.Hour, &distance, &unit, &p.RideName,
		&p.StartLocation, &p.EndLocation, &notes, &weather, &createdAt, &modifiedAt,
		&deletion, &comm)
	if err != nil {
		return domain.RideProjection{}, err
	}

	if p.ID, err = uuid.Parse(id); err != nil {
		return domain.RideProjection{}, fmt.Errorf("id: %w", err)
	}
	if p.Date, err = domain.ParseDate(rideDate); err != nil {
		return domain.RideProjection{}, err
	}
	if p.Distance, err = decimal.NewFromString(distance); err != nil {
		return domain.RideProjection{}, fmt.Errorf("distance: %w", err)
	}
	p.DistanceUnit = domain.DistanceUnit(unit)
	if notes.Valid {
		n := notes.String
		p.Notes = &n
	}
	if weather.Valid {
		if p.Weather, err = unmarshalWeather([]byte(weather.String)); err != nil {
			return domain.RideProjection{}, err
		}
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	if modifiedAt.Valid {
		m := time.Unix(0, modifiedAt.Int64).UTC()
		p.ModifiedAt = &m
	}
	p.DeletionStatus = domain.DeletionStatus(deletion)
	p.CommunityStatus = domain.CommunityStatus(comm)
	return p.WithAge(s.clock.Now()), nil
}

// decimalText formats d without dropping trailing zeros, so a distance reads
// back with the scale it was written with, as it does from a numeric column.
func decimalText(d decimal.Decimal) string {
	if d.Exponent() >= 0 {
		return d.String()
	}
	return d.StringFixed(-d.Exponent())
}
