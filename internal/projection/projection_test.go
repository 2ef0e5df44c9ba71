package projection_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/projection"
)

type stubWeather struct{ w *domain.Weather }

func (s stubWeather) HistoricalWeather(context.Context, domain.WeatherQuery) (*domain.Weather, error) {
	return s.w, nil
}
func (stubWeather) SourceName() string { return "stub" }

func ptr[T any](v T) *T { return &v }

var start = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// history drives the command handlers through create, two edits and a delete,
// applying each result incrementally the way the service does.
func history(t *testing.T) ([]event.Event, domain.RideProjection) {
	t.Helper()
	w := domain.NewWeather(domain.WeatherFields{Conditions: ptr("Drizzle"), CapturedAt: start})
	provider := stubWeather{w: &w}
	rideID := uuid.New()

	var (
		all  []event.Event
		incr domain.RideProjection
	)
	apply := func(events []event.Event) {
		for _, e := range events {
			require.NoError(t, projection.Apply(&incr, e))
			all = append(all, e)
		}
	}

	created, ok := command.NewCreateRideHandler(provider, domain.FixedClock(start)).Handle(context.Background(), command.CreateRide{
		RideID:        rideID,
		UserID:        "user-1",
		Date:          domain.DateOf(start).AddDays(-1),
		Hour:          7,
		Distance:      decimal.RequireFromString("20.1"),
		DistanceUnit:  domain.DistanceKilometers,
		RideName:      "Commute",
		StartLocation: "Home",
		EndLocation:   "Work",
		Latitude:      ptr(decimal.NewFromInt(47)),
		Longitude:     ptr(decimal.NewFromInt(-122)),
	}).Value()
	require.True(t, ok)
	apply(created.Events())

	edit := command.NewEditRideHandler(provider, domain.FixedClock(start.Add(time.Hour)))
	cur := incr
	edited, ok := edit.Handle(context.Background(), command.EditRide{
		RideID: rideID, UserID: "user-1", Current: &cur,
		NewHour:   ptr(8),
		NewNotes:  ptr("rain"),
		Latitude:  ptr(decimal.NewFromInt(47)),
		Longitude: ptr(decimal.NewFromInt(-122)),
	}).Value()
	require.True(t, ok)
	apply(edited.Events())

	cur = incr
	edited, ok = edit.Handle(context.Background(), command.EditRide{
		RideID: rideID, UserID: "user-1", Current: &cur,
		NewRideName: ptr("Commute home"),
	}).Value()
	require.True(t, ok)
	apply(edited.Events())

	cur = incr
	deleted, ok := command.NewDeleteRideHandler(domain.FixedClock(start.Add(2*time.Hour))).
		Handle(context.Background(), command.DeleteRide{RideID: rideID, UserID: "user-1", Current: &cur}).Value()
	require.True(t, ok)
	apply([]event.Event{deleted})

	return all, incr
}

func TestReplay_EqualsIncrementalApplication(t *testing.T) {
	events, incr := history(t)

	replayed, err := projection.Replay(events)

	require.NoError(t, err)
	assert.Equal(t, incr, replayed)
	assert.Equal(t, 8, replayed.Hour)
	assert.Equal(t, "Commute home", replayed.RideName)
	require.NotNil(t, replayed.Notes)
	assert.Equal(t, "rain", *replayed.Notes)
	assert.Equal(t, domain.DeletionMarkedForDeletion, replayed.DeletionStatus)
	require.NotNil(t, replayed.ModifiedAt)
	assert.True(t, start.Add(2*time.Hour).Equal(*replayed.ModifiedAt))
	assert.True(t, start.Equal(replayed.CreatedAt))
}

func TestReplay_SurvivesEncodeDecode(t *testing.T) {
	events, incr := history(t)

	decoded := make([]event.Event, 0, len(events))
	for _, e := range events {
		rec, err := event.Encode(e)
		require.NoError(t, err)
		d, err := event.Decode(rec)
		require.NoError(t, err)
		decoded = append(decoded, d)
	}

	replayed, err := projection.Replay(decoded)

	require.NoError(t, err)
	assert.Equal(t, incr.ID, replayed.ID)
	assert.Equal(t, incr.Date, replayed.Date)
	assert.Equal(t, incr.Hour, replayed.Hour)
	assert.True(t, incr.Distance.Equal(replayed.Distance))
	assert.Equal(t, incr.RideName, replayed.RideName)
	assert.Equal(t, incr.DeletionStatus, replayed.DeletionStatus)
	require.NotNil(t, replayed.Weather)
	assert.True(t, incr.Weather.Equal(*replayed.Weather))
}

func TestApply_WeatherEventsAreInformational(t *testing.T) {
	events, _ := history(t)
	var p domain.RideProjection
	require.NoError(t, projection.Apply(&p, events[0]))
	before := p

	for _, e := range events {
		switch e.Payload.(type) {
		case event.WeatherFetched, event.WeatherFetchFailed:
			require.NoError(t, projection.Apply(&p, e))
		}
	}

	assert.Equal(t, before, p)
}

func TestApply_EditBeforeCreate(t *testing.T) {
	var p domain.RideProjection
	e := event.New(uuid.New(), uuid.New(), "u", 1, start, event.RideEdited{ChangedFields: []string{}})

	err := projection.Apply(&p, e)

	assert.ErrorIs(t, err, projection.ErrNotCreated)
}

func TestApply_OtherAggregate(t *testing.T) {
	events, _ := history(t)
	var p domain.RideProjection
	require.NoError(t, projection.Apply(&p, events[0]))

	foreign := event.New(uuid.New(), uuid.New(), "u", 1, start, event.RideDeleted{DeletionType: event.DeletionManual})

	assert.ErrorIs(t, projection.Apply(&p, foreign), projection.ErrAggregateMismatch)
}

func TestReplay_Empty(t *testing.T) {
	_, err := projection.Replay(nil)
	assert.ErrorIs(t, err, projection.ErrNotCreated)
}
