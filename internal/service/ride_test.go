package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/result"
	"github.com/pkordes/ride-logbook/backend/internal/service"
)

var (
	now   = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	clock = domain.FixedClock(now)
	today = domain.DateOf(now)
)

func ptr[T any](v T) *T { return &v }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sunny() *domain.Weather {
	w := domain.NewWeather(domain.WeatherFields{
		Temperature: ptr(decimal.RequireFromString("18.4")),
		Conditions:  ptr("Clear sky"),
		CapturedAt:  now,
	})
	return &w
}

func sunnyProvider() *mockWeather {
	return &mockWeather{historical: func(context.Context, domain.WeatherQuery) (*domain.Weather, error) {
		return sunny(), nil
	}}
}

func newService(m *memory, w command.WeatherProvider, opts ...service.Option) *service.RideService {
	return service.NewRideService(m.eventStore, m.projectionStore, w, clock, quietLogger(), opts...)
}

func createCmd(userID string) command.CreateRide {
	return command.CreateRide{
		UserID:        userID,
		Date:          today.AddDays(-2),
		Hour:          9,
		Distance:      decimal.RequireFromString("21.1"),
		DistanceUnit:  domain.DistanceKilometers,
		RideName:      "Morning loop",
		StartLocation: "Home",
		EndLocation:   "Home",
		Latitude:      ptr(decimal.RequireFromString("52.52")),
		Longitude:     ptr(decimal.RequireFromString("13.405")),
	}
}

// mustCreate creates a ride through svc and fails the test on error.
func mustCreate(t *testing.T, svc *service.RideService, userID string) domain.RideProjection {
	t.Helper()
	r := svc.Create(context.Background(), createCmd(userID))
	require.True(t, r.IsSuccess(), "create failed: %v", r.Err())
	p, _ := r.Value()
	return p
}

// ---- Create ----------------------------------------------------------------

func TestRideService_Create_AppendsEventsThenProjection(t *testing.T) {
	m := newMemory()
	rideID := uuid.New()
	svc := newService(m, sunnyProvider(), service.WithRideIDGenerator(func() uuid.UUID { return rideID }))

	r := svc.Create(context.Background(), createCmd("user-1"))

	require.True(t, r.IsSuccess(), "%v", r.Err())
	p, _ := r.Value()
	assert.Equal(t, rideID, p.ID)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, domain.DeletionActive, p.DeletionStatus)
	assert.Equal(t, now, p.CreatedAt)
	require.NotNil(t, p.Weather)
	assert.True(t, p.Weather.Equal(*sunny()))

	assert.Equal(t, []event.Type{event.TypeRideCreated, event.TypeWeatherFetched}, m.types())
	assert.Contains(t, m.projections, rideID)
}

func TestRideService_Create_KeepsSuppliedRideID(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())

	cmd := createCmd("user-1")
	cmd.RideID = uuid.New()
	r := svc.Create(context.Background(), cmd)

	require.True(t, r.IsSuccess())
	assert.Equal(t, cmd.RideID, r.ValueOr(domain.RideProjection{}).ID)
}

func TestRideService_Create_ValidationFailureWritesNothing(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())

	cmd := createCmd("user-1")
	cmd.Hour = 24
	r := svc.Create(context.Background(), cmd)

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeValidationFailed, r.Err().Code)
	assert.Equal(t, "Hour must be between 0 and 23.", r.Err().Message)
	assert.Empty(t, m.types())
	assert.Empty(t, m.projections)
}

func TestRideService_Create_WeatherErrorStillCreates(t *testing.T) {
	m := newMemory()
	w := &mockWeather{historical: func(context.Context, domain.WeatherQuery) (*domain.Weather, error) {
		return nil, errors.New("archive down")
	}}
	svc := newService(m, w)

	r := svc.Create(context.Background(), createCmd("user-1"))

	require.True(t, r.IsSuccess())
	p, _ := r.Value()
	assert.Nil(t, p.Weather)
	assert.Equal(t, []event.Type{event.TypeRideCreated, event.TypeWeatherFetchFailed}, m.types())
}

func TestRideService_Create_AppendFailureIsUnexpected(t *testing.T) {
	m := newMemory()
	m.eventStore.appendFn = func(context.Context, event.Event) error {
		return errors.New("connection reset")
	}
	svc := newService(m, sunnyProvider())

	r := svc.Create(context.Background(), createCmd("user-1"))

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeUnexpected, r.Err().Code)
	assert.NotContains(t, r.Err().Message, "connection reset")
	assert.Empty(t, m.projections, "projection must not be written when the append fails")
}

func TestRideService_Create_DuplicateEventIsConflict(t *testing.T) {
	m := newMemory()
	m.eventStore.appendFn = func(context.Context, event.Event) error {
		return errors.Join(domain.ErrConflict, errors.New("duplicate key"))
	}
	svc := newService(m, sunnyProvider())

	r := svc.Create(context.Background(), createCmd("user-1"))

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeConflict, r.Err().Code)
}

// ---- Edit ------------------------------------------------------------------

func TestRideService_Edit_UpdatesProjection(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "user-1")

	r := svc.Edit(context.Background(), command.EditRide{
		RideID:      created.ID,
		UserID:      "user-1",
		NewRideName: ptr("Evening loop"),
		NewNotes:    ptr("windy"),
	})

	require.True(t, r.IsSuccess(), "%v", r.Err())
	p, _ := r.Value()
	assert.Equal(t, "Evening loop", p.RideName)
	require.NotNil(t, p.Notes)
	assert.Equal(t, "windy", *p.Notes)
	require.NotNil(t, p.ModifiedAt)
	assert.Equal(t, now, *p.ModifiedAt)
	assert.Equal(t, created.CreatedAt, p.CreatedAt)
	assert.Equal(t, "Evening loop", m.projections[created.ID].RideName)

	assert.Equal(t, []event.Type{
		event.TypeRideCreated, event.TypeWeatherFetched, event.TypeRideEdited,
	}, m.types())
}

func TestRideService_Edit_DateChangeRefetchesWeather(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "user-1")

	r := svc.Edit(context.Background(), command.EditRide{
		RideID:    created.ID,
		UserID:    "user-1",
		NewDate:   ptr(today.AddDays(-3)),
		Latitude:  ptr(decimal.RequireFromString("52.52")),
		Longitude: ptr(decimal.RequireFromString("13.405")),
	})

	require.True(t, r.IsSuccess(), "%v", r.Err())
	assert.Equal(t, today.AddDays(-3), r.ValueOr(domain.RideProjection{}).Date)
	assert.Equal(t, []event.Type{
		event.TypeRideCreated, event.TypeWeatherFetched, event.TypeRideEdited, event.TypeWeatherFetched,
	}, m.types())
}

func TestRideService_Edit_OtherUsersRideIsForbidden(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "owner")
	before := len(m.types())

	r := svc.Edit(context.Background(), command.EditRide{
		RideID:      created.ID,
		UserID:      "intruder",
		NewRideName: ptr("mine now"),
	})

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeForbidden, r.Err().Code)
	assert.Len(t, m.types(), before)
}

func TestRideService_Edit_MissingRideIsNotFound(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	id := uuid.New()

	r := svc.Edit(context.Background(), command.EditRide{RideID: id, UserID: "user-1", NewHour: ptr(3)})

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeNotFound, r.Err().Code)
	assert.Equal(t, "Ride "+id.String()+" not found.", r.Err().Message)
}

func TestRideService_Edit_DeletedRideIsConflict(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "user-1")
	require.True(t, svc.Delete(context.Background(), created.ID, "user-1").IsSuccess())

	r := svc.Edit(context.Background(), command.EditRide{RideID: created.ID, UserID: "user-1", NewHour: ptr(3)})

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeConflict, r.Err().Code)
}

func TestRideService_Edit_LoadFailureIsUnexpected(t *testing.T) {
	m := newMemory()
	m.projectionStore.getByIDFn = func(context.Context, uuid.UUID) (domain.RideProjection, error) {
		return domain.RideProjection{}, errors.New("timeout")
	}
	svc := newService(m, sunnyProvider())

	r := svc.Edit(context.Background(), command.EditRide{RideID: uuid.New(), UserID: "user-1"})

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeUnexpected, r.Err().Code)
}

// ---- Delete ----------------------------------------------------------------

func TestRideService_Delete_MarksForDeletion(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "user-1")

	r := svc.Delete(context.Background(), created.ID, "user-1")

	require.True(t, r.IsSuccess(), "%v", r.Err())
	assert.Equal(t, domain.DeletionMarkedForDeletion, r.ValueOr(domain.RideProjection{}).DeletionStatus)
	assert.Equal(t, event.TypeRideDeleted, m.types()[len(m.types())-1])

	again := svc.Delete(context.Background(), created.ID, "user-1")
	require.True(t, again.IsFailure())
	assert.Equal(t, result.CodeConflict, again.Err().Code)
}

func TestRideService_Delete_OtherUsersRideIsForbidden(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "owner")

	r := svc.Delete(context.Background(), created.ID, "intruder")

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeForbidden, r.Err().Code)
}

// ---- Reads -----------------------------------------------------------------

func TestRideService_Get(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "user-1")

	got := svc.Get(context.Background(), created.ID, "user-1")
	require.True(t, got.IsSuccess())
	assert.Equal(t, created.ID, got.ValueOr(domain.RideProjection{}).ID)

	assert.Equal(t, result.CodeForbidden, svc.Get(context.Background(), created.ID, "user-2").Err().Code)
	assert.Equal(t, result.CodeNotFound, svc.Get(context.Background(), uuid.New(), "user-1").Err().Code)
}

func TestRideService_List(t *testing.T) {
	m := newMemory()
	page := domain.NewPaginationParams(ptr(2), ptr(10))
	rides := []domain.RideProjection{{ID: uuid.New(), UserID: "user-1"}}
	m.projectionStore.listByUserFn = func(_ context.Context, userID string, p domain.PaginationParams) ([]domain.RideProjection, error) {
		assert.Equal(t, "user-1", userID)
		assert.Equal(t, page, p)
		return rides, nil
	}
	m.projectionStore.countByUserFn = func(context.Context, string) (int64, error) { return 11, nil }
	svc := newService(m, sunnyProvider())

	r := svc.List(context.Background(), "user-1", page)

	require.True(t, r.IsSuccess())
	got, _ := r.Value()
	assert.Equal(t, rides, got.Rides)
	assert.Equal(t, int64(11), got.Total)
	assert.Equal(t, page, got.Page)
}

func TestRideService_List_CountFailure(t *testing.T) {
	m := newMemory()
	m.projectionStore.listByUserFn = func(context.Context, string, domain.PaginationParams) ([]domain.RideProjection, error) {
		return nil, nil
	}
	m.projectionStore.countByUserFn = func(context.Context, string) (int64, error) { return 0, errors.New("boom") }
	svc := newService(m, sunnyProvider())

	r := svc.List(context.Background(), "user-1", domain.NewPaginationParams(nil, nil))

	require.True(t, r.IsFailure())
	assert.Equal(t, result.CodeUnexpected, r.Err().Code)
}

func TestRideService_History(t *testing.T) {
	m := newMemory()
	svc := newService(m, sunnyProvider())
	created := mustCreate(t, svc, "user-1")

	r := svc.History(context.Background(), created.ID, "user-1")
	require.True(t, r.IsSuccess())
	events, _ := r.Value()
	require.Len(t, events, 2)
	assert.Equal(t, event.TypeRideCreated, events[0].Type())

	assert.Equal(t, result.CodeForbidden, svc.History(context.Background(), created.ID, "user-2").Err().Code)
	assert.Equal(t, result.CodeNotFound, svc.History(context.Background(), uuid.New(), "user-1").Err().Code)
}

func TestRideService_Export_PagesThroughAllRides(t *testing.T) {
	m := newMemory()
	const total = 130
	var pages []int
	m.projectionStore.listByUserFn = func(_ context.Context, _ string, p domain.PaginationParams) ([]domain.RideProjection, error) {
		pages = append(pages, p.Page)
		n := min(p.Limit, total-p.Offset())
		out := make([]domain.RideProjection, 0, max(n, 0))
		for range n {
			out = append(out, domain.RideProjection{ID: uuid.New(), Date: today, Distance: decimal.NewFromInt(1)})
		}
		return out, nil
	}
	svc := newService(m, sunnyProvider())

	r := svc.Export(context.Background(), "user-1")

	require.True(t, r.IsSuccess())
	assert.Len(t, r.ValueOr(nil), total)
	assert.Equal(t, []int{1, 2}, pages)
}

func TestRideService_Export_EmptyIsNotNil(t *testing.T) {
	m := newMemory()
	m.projectionStore.listByUserFn = func(context.Context, string, domain.PaginationParams) ([]domain.RideProjection, error) {
		return nil, nil
	}
	svc := newService(m, sunnyProvider())

	rows, ok := svc.Export(context.Background(), "user-1").Value()

	require.True(t, ok)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
