package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ride-logbook/backend/internal/command"
	"github.com/pkordes/ride-logbook/backend/internal/domain"
	"github.com/pkordes/ride-logbook/backend/internal/event"
	"github.com/pkordes/ride-logbook/backend/internal/result"
)

func currentProjection() *domain.RideProjection {
	return &domain.RideProjection{
		ID:              uuid.New(),
		UserID:          "user-1",
		Date:            today.AddDays(-5),
		Hour:            14,
		Distance:        decimal.RequireFromString("12.5"),
		DistanceUnit:    domain.DistanceMiles,
		RideName:        "A",
		StartLocation:   "B",
		EndLocation:     "C",
		CreatedAt:       now.AddDate(0, 0, -5),
		DeletionStatus:  domain.DeletionActive,
		CommunityStatus: domain.CommunityPrivate,
	}
}

func editOf(cur *domain.RideProjection) command.EditRide {
	return command.EditRide{RideID: cur.ID, UserID: cur.UserID, Current: cur}
}

func TestEditRide_NilCurrentIsNotFound(t *testing.T) {
	res := command.NewEditRideHandler(&mockWeather{}, clock).Handle(context.Background(), command.EditRide{RideID: uuid.New()})

	require.True(t, res.IsFailure())
	assert.Equal(t, result.CodeNotFound, res.Err().Code)
}

func TestEditRide_NameOnly(t *testing.T) {
	w := &mockWeather{}
	cmd := editOf(currentProjection())
	cmd.NewRideName = ptr("Evening loop")
	cmd.Latitude = ptr(decimal.NewFromInt(47))
	cmd.Longitude = ptr(decimal.NewFromInt(-122))

	out, ok := command.NewEditRideHandler(w, clock).Handle(context.Background(), cmd).Value()

	require.True(t, ok)
	assert.Zero(t, w.calls)
	assert.Empty(t, out.Additional)
	assert.Equal(t, event.TypeRideEdited, out.Edited.Type())
	assert.Equal(t, 1, out.Edited.Version)

	p := out.Payload()
	assert.Equal(t, []string{"RideName"}, p.ChangedFields)
	require.NotNil(t, p.NewRideName)
	assert.Equal(t, "Evening loop", *p.NewRideName)
	assert.Nil(t, p.NewDate)
	assert.Nil(t, p.NewHour)
	assert.Nil(t, p.NewWeather)

	assert.Equal(t, "Evening loop", out.Ride.RideName)
	require.NotNil(t, out.Ride.ModifiedAt)
	assert.True(t, now.Equal(*out.Ride.ModifiedAt))
}

func TestEditRide_ChangedFieldsExactlyTheDifferingOnes(t *testing.T) {
	cur := currentProjection()
	cur.Notes = ptr("old")
	cmd := editOf(cur)
	// Unchanged: hour, distance (numerically equal), start location, date.
	cmd.NewHour = ptr(14)
	cmd.NewDistance = ptr(decimal.RequireFromString("12.50"))
	cmd.NewStartLocation = ptr("B")
	cmd.NewDate = ptr(cur.Date)
	// Changed.
	cmd.NewDistanceUnit = ptr(domain.DistanceKilometers)
	cmd.NewEndLocation = ptr("D")
	cmd.NewNotes = ptr("new")

	out, ok := command.NewEditRideHandler(&mockWeather{}, clock).Handle(context.Background(), cmd).Value()

	require.True(t, ok)
	p := out.Payload()
	assert.Equal(t, []string{"DistanceUnit", "EndLocation", "Notes"}, p.ChangedFields)
	assert.Nil(t, p.NewHour)
	assert.Nil(t, p.NewDistance)
	assert.Nil(t, p.NewStartLocation)
	require.NotNil(t, p.NewDistanceUnit)
	assert.Equal(t, domain.DistanceKilometers, *p.NewDistanceUnit)
}

func TestEditRide_FieldOrder(t *testing.T) {
	cmd := editOf(currentProjection())
	cmd.NewNotes = ptr("n")
	cmd.NewRideName = ptr("x")
	cmd.NewHour = ptr(9)
	cmd.NewDate = ptr(today.AddDays(-1))
	cmd.NewDistance = ptr(decimal.NewFromInt(5))

	out, ok := command.NewEditRideHandler(&mockWeather{}, clock).Handle(context.Background(), cmd).Value()

	require.True(t, ok)
	assert.Equal(t, []string{"Date", "Hour", "Distance", "RideName", "Notes"}, out.Payload().ChangedFields)
}

func TestEditRide_NotesNilEqualsEmpty(t *testing.T) {
	cmd := editOf(currentProjection()) // Notes nil
	cmd.NewNotes = ptr("")

	out, ok := command.NewEditRideHandler(&mockWeather{}, clock).Handle(context.Background(), cmd).Value()

	require.True(t, ok)
	assert.Empty(t, out.Payload().ChangedFields)
}

func TestEditRide_NothingSupplied(t *testing.T) {
	out, ok := command.NewEditRideHandler(&mockWeather{}, clock).Handle(context.Background(), editOf(currentProjection())).Value()

	require.True(t, ok)
	assert.NotNil(t, out.Payload().ChangedFields)
	assert.Empty(t, out.Payload().ChangedFields)
}

func TestEditRide_ValidationFailure(t *testing.T) {
	w := &mockWeather{}
	cmd := editOf(currentProjection())
	cmd.NewHour = ptr(30)
	cmd.Latitude = ptr(decimal.NewFromInt(1))
	cmd.Longitude = ptr(decimal.NewFromInt(1))

	res := command.NewEditRideHandler(w, clock).Handle(context.Background(), cmd)

	require.True(t, res.IsFailure())
	assert.Equal(t, "Hour must be between 0 and 23.", res.Err().Message)
	assert.Zero(t, w.calls)
}

func TestEditRide_DateChangeRefetchesWeather(t *testing.T) {
	fetched := populated()
	w := &mockWeather{historical: func(context.Context, domain.WeatherQuery) (*domain.Weather, error) {
		return fetched, nil
	}}
	cmd := editOf(currentProjection())
	cmd.NewDate = ptr(today.AddDays(-2))
	cmd.Latitude = ptr(decimal.NewFromInt(47))
	cmd.Longitude = ptr(decimal.NewFromInt(-122))

	out, ok := command.NewEditRideHandler(w, clock).Handle(context.Background(), cmd).Value()

	require.True(t, ok)
	assert.Equal(t, 1, w.calls)
	assert.Equal(t, today.AddDays(-2), w.lastQuery.Date)
	assert.Equal(t, 14, w.lastQuery.Hour, "unchanged hour carried into the query")
	require.Len(t, out.Additional, 1)
	assert.Equal(t, event.TypeWeatherFetched, out.Additional[0].Type())
	require.NotNil(t, out.Payload().NewWeather)
	assert.True(t, fetched.Equal(*out.Payload().NewWeather))
	require.NotNil(t, out.Ride.Weather)
}

func TestEditRide_HourChangeWithoutCoordinatesSkipsWeather(t *testing.T) {
	w := &mockWeather{}
	cmd := editOf(currentProjection())
	cmd.NewHour = ptr(8)

	out, ok := command.NewEditRideHandler(w, clock).Handle(context.Background(), cmd).Value()

	require.True(t, ok)
	assert.Zero(t, w.calls)
	assert.Empty(t, out.Additional)
}

func TestEditRide_WeatherFailuresAreAbsorbed(t *testing.T) {
	tests := map[string]struct {
		fn      func(context.Context, domain.WeatherQuery) (*domain.Weather, error)
		message string
	}{
		"unavailable": {
			fn:      func(context.Context, domain.WeatherQuery) (*domain.Weather, error) { return nil, nil },
			message: "Updated weather data unavailable",
		},
		"error": {
			fn:      func(context.Context, domain.WeatherQuery) (*domain.Weather, error) { return nil, errors.New("503 from upstream") },
			message: "Weather fetch error: 503 from upstream",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := editOf(currentProjection())
			cmd.NewHour = ptr(7)
			cmd.Latitude = ptr(decimal.NewFromInt(47))
			cmd.Longitude = ptr(decimal.NewFromInt(-122))

			out, ok := command.NewEditRideHandler(&mockWeather{historical: tc.fn}, clock).Handle(context.Background(), cmd).Value()

			require.True(t, ok)
			require.Len(t, out.Additional, 1)
			assert.Equal(t, 2, out.Additional[0].Version)
			assert.Equal(t, tc.message, out.Additional[0].Payload.(event.WeatherFetchFailed).ErrorMessage)
			assert.Nil(t, out.Payload().NewWeather)
		})
	}
}
