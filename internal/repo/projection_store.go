package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/ride-logbook/backend/internal/domain"
)

// ProjectionStore persists the current-state read model of rides.
// Every returned projection has AgeInDays computed from the store's clock.
type ProjectionStore interface {
	// Create inserts a new projection. Returns domain.ErrConflict if the id exists.
	Create(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error)

	// GetByID returns a projection regardless of its deletion status.
	// Returns domain.ErrNotFound if no row has that id.
	GetByID(ctx context.Context, id uuid.UUID) (domain.RideProjection, error)

	// ListByUser returns one page of a user's active rides, newest first.
	ListByUser(ctx context.Context, userID string, page domain.PaginationParams) ([]domain.RideProjection, error)

	// Update overwrites every mutable column. Returns domain.ErrNotFound if
	// the row does not exist.
	Update(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error)

	// Upsert writes p whether or not a row exists. Used by rebuilds.
	Upsert(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error)

	// Delete removes the row. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByUser counts a user's active rides.
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// pgProjectionStore is the Postgres implementation of ProjectionStore.
type pgProjectionStore struct {
	db    db
	clock domain.Clock
}

// NewProjectionStore constructs a ProjectionStore backed by the provided db
// connection. clock drives AgeInDays.
func NewProjectionStore(db db, clock domain.Clock) ProjectionStore {
	return &pgProjectionStore{db: db, clock: clock}
}

const projectionColumns = `id, user_id, ride_date, hour, distance, distance_unit, ride_name,
	start_location, end_location, notes, weather, created_at, modified_at,
	deletion_status, community_status`

func (s *pgProjectionStore) Create(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	args, err := projectionArgs(p)
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.ProjectionStore.Create: %w", err)
	}

	const q = `
		INSERT INTO ride_projections (` + projectionColumns + `)
		VALUES (@id, @user_id, @ride_date, @hour, @distance, @distance_unit, @ride_name,
			@start_location, @end_location, @notes, @weather, @created_at, @modified_at,
			@deletion_status, @community_status)
		RETURNING ` + projectionColumns

	got, err := s.scan(s.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.ProjectionStore.Create: %w", mapPgError(err))
	}
	return got, nil
}

func (s *pgProjectionStore) GetByID(ctx context.Context, id uuid.UUID) (domain.RideProjection, error) {
	const q = `SELECT ` + projectionColumns + ` FROM ride_projections WHERE id = @id`

	got, err := s.scan(s.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.ProjectionStore.GetByID: %w", mapPgError(err))
	}
	return got, nil
}

func (s *pgProjectionStore) ListByUser(ctx context.Context, userID string, page domain.PaginationParams) ([]domain.RideProjection, error) {
	const q = `
		SELECT ` + projectionColumns + `
		FROM ride_projections
		WHERE user_id = @user_id AND deletion_status = 'active'
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   page.Limit,
		"offset":  page.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.ProjectionStore.ListByUser: %w", err)
	}
	defer rows.Close()

	out := []domain.RideProjection{}
	for rows.Next() {
		p, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ProjectionStore.ListByUser: scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ProjectionStore.ListByUser: rows: %w", err)
	}
	return out, nil
}

func (s *pgProjectionStore) Update(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	args, err := projectionArgs(p)
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.ProjectionStore.Update: %w", err)
	}

	const q = `
		UPDATE ride_projections
		SET ride_date        = @ride_date,
		    hour             = @hour,
		    distance         = @distance,
		    distance_unit    = @distance_unit,
		    ride_name        = @ride_name,
		    start_location   = @start_location,
		    end_location     = @end_location,
		    notes            = @notes,
		    weather          = @weather,
		    modified_at      = @modified_at,
		    deletion_status  = @deletion_status,
		    community_status = @community_status
		WHERE id = @id
		RETURNING ` + projectionColumns

	got, err := s.scan(s.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.ProjectionStore.Update: %w", mapPgError(err))
	}
	return got, nil
}

func (s *pgProjectionStore) Upsert(ctx context.Context, p domain.RideProjection) (domain.RideProjection, error) {
	args, err := projectionArgs(p)
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.ProjectionStore.Upsert: %w", err)
	}

	const q = `
		INSERT INTO ride_projections (` + projectionColumns + `)
		VALUES (@id, @user_id, @ride_date, @hour, @distance, @distance_unit, @ride_name,
			@start_location, @end_location, @notes, @weather, @created_at, @modified_at,
			@deletion_status, @community_status)
		ON CONFLICT (id) DO UPDATE SET
			user_id          = EXCLUDED.user_id,
			ride_date        = EXCLUDED.ride_date,
			hour             = EXCLUDED.hour,
			distance         = EXCLUDED.distance,
			distance_unit    = EXCLUDED.distance_unit,
			ride_name        = EXCLUDED.ride_name,
			start_location   = EXCLUDED.start_location,
			end_location     = EXCLUDED.end_location,
			notes            = EXCLUDED.notes,
			weather          = EXCLUDED.weather,
			created_at       = EXCLUDED.created_at,
			modified_at      = EXCLUDED.modified_at,
			deletion_status  = EXCLUDED.deletion_status,
			community_status = EXCLUDED.community_status
		RETURNING ` + projectionColumns

	got, err := s.scan(s.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RideProjection{}, fmt.Errorf("repo.ProjectionStore.Upsert: %w", mapPgError(err))
	}
	return got, nil
}

func (s *pgProjectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM ride_projections WHERE id = @id`

	tag, err := s.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ProjectionStore.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ProjectionStore.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (s *pgProjectionStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	const q = `
		SELECT count(*) FROM ride_projections
		WHERE user_id = @user_id AND deletion_status = 'active'`

	var n int64
	if err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.ProjectionStore.CountByUser: %w", err)
	}
	return n, nil
}

// projectionArgs maps p to named args. Weather is stored as JSONB, NULL when absent.
func projectionArgs(p domain.RideProjection) (pgx.NamedArgs, error) {
	weather, err := marshalWeather(p.Weather)
	if err != nil {
		return nil, err
	}
	return pgx.NamedArgs{
		"id":               p.ID,
		"user_id":          p.UserID,
		"ride_date":        toPgDate(p.Date),
		"hour":             p.Hour,
		"distance":         toNumeric(p.Distance),
		"distance_unit":    string(p.DistanceUnit),
		"ride_name":        p.RideName,
		"start_location":   p.StartLocation,
		"end_location":     p.EndLocation,
		"notes":            p.Notes,
		"weather":          weather,
		"created_at":       p.CreatedAt,
		"modified_at":      p.ModifiedAt,
		"deletion_status":  string(p.DeletionStatus),
		"community_status": string(p.CommunityStatus),
	}, nil
}

// scan maps one ride_projections row and stamps AgeInDays.
func (s *pgProjectionStore) scan(sc scanner) (domain.RideProjection, error) {
	var (
		p         domain.RideProjection
		id        pgtype.UUID
		rideDate  pgtype.Date
		distance  pgtype.Numeric
		unit      string
		weather   []byte
		deletion  string
		community string
	)
	err := sc.Scan(&id, &p.UserID, &rideDate, &p.Hour, &distance, &unit, &p.RideName,
		&p.StartLocation, &p.EndLocation, &p.Notes, &weather, &p.CreatedAt, &p.ModifiedAt,
		&deletion, &community)
	if err != nil {
		return domain.RideProjection{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.Date = domain.DateOf(rideDate.Time)
	p.Distance = fromNumeric(distance)
	p.DistanceUnit = domain.DistanceUnit(unit)
	p.DeletionStatus = domain.DeletionStatus(deletion)
	p.CommunityStatus = domain.CommunityStatus(community)
	p.CreatedAt = p.CreatedAt.UTC()
	if p.ModifiedAt != nil {
		m := p.ModifiedAt.UTC()
		p.ModifiedAt = &m
	}
	if p.Weather, err = unmarshalWeather(weather); err != nil {
		return domain.RideProjection{}, err
	}
	return p.WithAge(s.clock.Now()), nil
}

func marshalWeather(w *domain.Weather) ([]byte, error) {
	if w == nil {
		return nil, nil
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("marshal weather: %w", err)
	}
	return b, nil
}

func unmarshalWeather(b []byte) (*domain.Weather, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var w domain.Weather
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("unmarshal weather: %w", err)
	}
	return &w, nil
}
