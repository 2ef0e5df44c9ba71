// Package service contains the caller side of the ride write path.
// RideService runs the command handlers, appends the events they emit and
// keeps the projection store in step with the log. No SQL lives here: the
// service depends on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/projection"
	"github.com/pkordes/ride-logbook/backend/internal/repo"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

const tracerName = "github.com/pkordes/ride-logbook/backend/internal/service"

const (
	defaultRebuildLimit = 4
	exportPageSize      = 100
)

// Messages returned to callers. Persistence details are logged, never shown.
const (
	msgUnexpected   = "An unexpected error occurred."
	msgForbidden    = "You do not have access to this ride."
	msgEditInactive = "Ride is marked for deletion and cannot be edited."
)

// RidePage is one page of a user's active rides plus the total count.
type RidePage struct {
	Rides []domain.RideProjection
	Total int64
	Page  domain.PaginationParams
}

// Option configures a RideService.
type Option func(*RideService)

// WithCommandOptions forwards opts to the command handlers the service builds.
func WithCommandOptions(opts ...command.Option) Option {
	return func(s *RideService) { s.commandOpts = append(s.commandOpts, opts...) }
}

// WithRideIDGenerator overrides how ids are assigned to new rides.
func WithRideIDGenerator(fn func() uuid.UUID) Option {
	return func(s *RideService) { s.newRideID = fn }
}

// WithRebuildLimit caps how many rides RebuildUser replays concurrently.
func WithRebuildLimit(n int) Option {
	return func(s *RideService) {
		if n > 0 {
			s.rebuildLimit = n
		}
	}
}

// WithTracer overrides the tracer, which defaults to the global provider's.
func WithTracer(t trace.Tracer) Option {
	return func(s *RideService) { s.tracer = t }
}

// RideService implements the ride use cases on top of the event log and the
// projection read model.
type RideService struct {
	events      repo.EventStore
	projections repo.ProjectionStore
	logger      *slog.Logger
	tracer      trace.Tracer

	create *command.CreateRideHandler
	edit   *command.EditRideHandler
	remove *command.DeleteRideHandler

	commandOpts  []command.Option
	newRideID    func() uuid.UUID
	rebuildLimit int
}

// NewRideService constructs a RideService. A nil logger falls back to slog.Default().
func NewRideService(
	events repo.EventStore,
	projections repo.ProjectionStore,
	weather command.WeatherProvider,
	clock domain.Clock,
	logger *slog.Logger,
	opts ...Option,
) *RideService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &RideService{
		events:       events,
		projections:  projections,
		logger:       logger,
		tracer:       otel.Tracer(tracerName),
		newRideID:    uuid.New,
		rebuildLimit: defaultRebuildLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.create = command.NewCreateRideHandler(weather, clock, s.commandOpts...)
	s.edit = command.NewEditRideHandler(weather, clock, s.commandOpts...)
	s.remove = command.NewDeleteRideHandler(clock, s.commandOpts...)
	return s
}

// Create runs the create handler, appends its events and inserts the
// projection. A zero RideID is replaced with a fresh id.
func (s *RideService) Create(ctx context.Context, cmd command.CreateRide) result.Result[domain.RideProjection] {
	if cmd.RideID == uuid.Nil {
		cmd.RideID = s.newRideID()
	}
	ctx, span := s.start(ctx, "RideService.Create", cmd.RideID, cmd.UserID)
	defer span.End()

	r := result.Bind(s.create.Handle(ctx, cmd), func(o command.CreateRideOutcome) result.Result[domain.RideProjection] {
		s.logWeatherFailures(ctx, o.Additional)
		events := o.Events()
		if err := s.append(ctx, events); err != nil {
			return fail[domain.RideProjection](ctx, s, "create: append", err)
		}
		p, err := projection.Replay(events)
		if err != nil {
			return fail[domain.RideProjection](ctx, s, "create: replay", err)
		}
		created, err := s.projections.Create(ctx, p)
		if err != nil {
			return fail[domain.RideProjection](ctx, s, "create: projection", err)
		}
		return result.Success(created)
	})
	return finish(span, r)
}

// Edit loads the ride, checks that userID owns it and that it is still
// active, then runs the edit handler, appends its events and updates the
// projection. The cmd's Current field is filled in by Edit.
func (s *RideService) Edit(ctx context.Context, cmd command.EditRide) result.Result[domain.RideProjection] {
	ctx, span := s.start(ctx, "RideService.Edit", cmd.RideID, cmd.UserID)
	defer span.End()

	r := result.Bind(s.loadOwned(ctx, cmd.RideID, cmd.UserID), func(cur domain.RideProjection) result.Result[domain.RideProjection] {
		if !cur.IsActive() {
			return result.Failure[domain.RideProjection](result.Conflict(msgEditInactive))
		}
		cmd.Current = &cur
		return result.Bind(s.edit.Handle(ctx, cmd), func(o command.EditRideOutcome) result.Result[domain.RideProjection] {
			s.logWeatherFailures(ctx, o.Additional)
			return s.commit(ctx, "edit", cur, o.Events())
		})
	})
	return finish(span, r)
}

// Delete marks the ride for deletion. The row stays in the store but drops
// out of List, CountByUser and Export.
func (s *RideService) Delete(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	ctx, span := s.start(ctx, "RideService.Delete", rideID, userID)
	defer span.End()

	r := result.Bind(s.loadOwned(ctx, rideID, userID), func(cur domain.RideProjection) result.Result[domain.RideProjection] {
		cmd := command.DeleteRide{RideID: rideID, UserID: userID, Current: &cur}
		return result.Bind(s.remove.Handle(ctx, cmd), func(e event.Event) result.Result[domain.RideProjection] {
			return s.commit(ctx, "delete", cur, []event.Event{e})
		})
	})
	return finish(span, r)
}

// Get returns the ride's projection, including rides marked for deletion.
func (s *RideService) Get(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	ctx, span := s.start(ctx, "RideService.Get", rideID, userID)
	defer span.End()
	return finish(span, s.loadOwned(ctx, rideID, userID))
}

// List returns one page of the user's active rides, newest first.
func (s *RideService) List(ctx context.Context, userID string, page domain.PaginationParams) result.Result[RidePage] {
	ctx, span := s.tracer.Start(ctx, "RideService.List", trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.Int("page", page.Page),
		attribute.Int("limit", page.Limit),
	))
	defer span.End()

	rides, err := s.projections.ListByUser(ctx, userID, page)
	if err != nil {
		return finish(span, fail[RidePage](ctx, s, "list", err))
	}
	total, err := s.projections.CountByUser(ctx, userID)
	if err != nil {
		return finish(span, fail[RidePage](ctx, s, "list: count", err))
	}
	return finish(span, result.Success(RidePage{Rides: rides, Total: total, Page: page}))
}

// History returns every event of the ride in fold order.
func (s *RideService) History(ctx context.Context, rideID uuid.UUID, userID string) result.Result[[]event.Event] {
	ctx, span := s.start(ctx, "RideService.History", rideID, userID)
	defer span.End()
	return finish(span, s.loadEvents(ctx, rideID, userID))
}

// RebuildRide replays the ride's events and overwrites its projection.
func (s *RideService) RebuildRide(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	ctx, span := s.start(ctx, "RideService.RebuildRide", rideID, userID)
	defer span.End()

	r := result.Bind(s.loadEvents(ctx, rideID, userID), func(events []event.Event) result.Result[domain.RideProjection] {
		p, err := s.rebuild(ctx, events)
		if err != nil {
			return fail[domain.RideProjection](ctx, s, "rebuild ride", err)
		}
		return result.Success(p)
	})
	return finish(span, r)
}

// Export returns a flat row for every active ride of the user, newest first.
func (s *RideService) Export(ctx context.Context, userID string) result.Result[[]domain.ExportRow] {
	ctx, span := s.tracer.Start(ctx, "RideService.Export", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	rows := []domain.ExportRow{}
	for page := 1; ; page++ {
		p := domain.PaginationParams{Page: page, Limit: exportPageSize}
		rides, err := s.projections.ListByUser(ctx, userID, p)
		if err != nil {
			return finish(span, fail[[]domain.ExportRow](ctx, s, "export", err))
		}
		for _, ride := range rides {
			rows = append(rows, domain.NewExportRow(ride))
		}
		if len(rides) < exportPageSize {
			break
		}
	}
	span.SetAttributes(attribute.Int("export.rows", len(rows)))
	return finish(span, result.Success(rows))
}

// loadOwned fetches the projection and fails with Forbidden when it belongs
// to another user.
func (s *RideService) loadOwned(ctx context.Context, rideID uuid.UUID, userID string) result.Result[domain.RideProjection] {
	p, err := s.projections.GetByID(ctx, rideID)
	if errors.Is(err, domain.ErrNotFound) {
		return result.Failure[domain.RideProjection](notFound(rideID))
	}
	if err != nil {
		return fail[domain.RideProjection](ctx, s, "load projection", err)
	}
	if p.UserID != userID {
		return result.Failure[domain.RideProjection](result.Forbidden(msgForbidden))
	}
	return result.Success(p)
}

// loadEvents fetches the ride's event stream and applies the same ownership
// rule as loadOwned, using the user id recorded on the events.
func (s *RideService) loadEvents(ctx context.Context, rideID uuid.UUID, userID string) result.Result[[]event.Event] {
	events, err := s.events.ListByAggregate(ctx, rideID)
	if err != nil {
		return fail[[]event.Event](ctx, s, "load events", err)
	}
	if len(events) == 0 {
		return result.Failure[[]event.Event](notFound(rideID))
	}
	if events[0].UserID != userID {
		return result.Failure[[]event.Event](result.Forbidden(msgForbidden))
	}
	return result.Success(events)
}

// commit appends events, folds them into cur and writes the projection back.
func (s *RideService) commit(ctx context.Context, op string, cur domain.RideProjection, events []event.Event) result.Result[domain.RideProjection] {
	if err := s.append(ctx, events); err != nil {
		return fail[domain.RideProjection](ctx, s, op+": append", err)
	}
	next := cur
	for _, e := range events {
		if err := projection.Apply(&next, e); err != nil {
			return fail[domain.RideProjection](ctx, s, op+": apply", err)
		}
	}
	updated, err := s.projections.Update(ctx, next)
	if err != nil {
		return fail[domain.RideProjection](ctx, s, op+": projection", err)
	}
	return result.Success(updated)
}

// append writes events in order. Events already appended stay in the log if
// a later one fails; RebuildRide repairs the projection from whatever landed.
func (s *RideService) append(ctx context.Context, events []event.Event) error {
	for _, e := range events {
		if err := s.events.Append(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *RideService) rebuild(ctx context.Context, events []event.Event) (domain.RideProjection, error) {
	p, err := projection.Replay(events)
	if err != nil {
		return domain.RideProjection{}, err
	}
	return s.projections.Upsert(ctx, p)
}

func (s *RideService) logWeatherFailures(ctx context.Context, events []event.Event) {
	for _, e := range events {
		if pl, ok := e.Payload.(event.WeatherFetchFailed); ok {
			s.logger.WarnContext(ctx, "weather unavailable",
				"ride_id", e.AggregateID,
				"source", pl.SourceAPI,
				"reason", pl.ErrorMessage,
			)
		}
	}
}

// fail logs err and converts it into a Failure. Store sentinels keep their
// meaning; anything else is reported as Unexpected.
func fail[T any](ctx context.Context, s *RideService, op string, err error) result.Result[T] {
	return result.Failure[T](s.mapError(ctx, op, err))
}

func (s *RideService) mapError(ctx context.Context, op string, err error) *result.Error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return result.NotFound("Ride not found.")
	case errors.Is(err, domain.ErrConflict):
		return result.Conflict("The ride was changed concurrently; retry the request.")
	}
	s.logger.ErrorContext(ctx, "ride service failure", "op", op, "error", err)
	trace.SpanFromContext(ctx).RecordError(err)
	return result.Unexpected(msgUnexpected)
}

func (s *RideService) start(ctx context.Context, name string, rideID uuid.UUID, userID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("ride.id", rideID.String()),
		attribute.String("user.id", userID),
	))
}

// finish records a failure on span and returns r unchanged.
func finish[T any](span trace.Span, r result.Result[T]) result.Result[T] {
	if e := r.Err(); e != nil {
		span.SetStatus(codes.Error, e.Message)
		span.SetAttributes(attribute.String("error.code", string(e.Code)))
	}
	return r
}

func notFound(rideID uuid.UUID) *result.Error {
	return result.NotFound("Ride " + rideID.String() + " not found.")
}
